// Command storefront is the CLI front-end of the demo: it browses the
// catalogue, manages the local cart file, and places and lists orders.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"shopdemo/internal/cart"
	"shopdemo/internal/storefront"
)

const usage = `Usage: storefront [flags] <command> [args]

Commands:
  products                 list the product catalogue
  cart                     show the cart and its total
  cart-add <id> [qty]      add a product to the cart (default qty 1)
  cart-clear               empty the cart
  orders                   list placed orders
  place <userID>           place an order from the cart

Flags:
`

func main() {
	apiURL := flag.String("api", "http://localhost:5000", "base URL of the API server")
	cartDir := flag.String("cart-dir", ".", "directory holding the cart file")
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, usage)
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	client := storefront.NewClient(*apiURL)
	ctx := context.Background()

	if err := dispatch(ctx, client, *cartDir, flag.Args()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func dispatch(ctx context.Context, client *storefront.Client, cartDir string, args []string) error {
	switch args[0] {
	case "products":
		return listProducts(ctx, client)
	case "cart":
		return showCart(cartDir)
	case "cart-add":
		if len(args) < 2 {
			return fmt.Errorf("cart-add requires a product id")
		}
		qty := 1
		if len(args) > 2 {
			n, err := strconv.Atoi(args[2])
			if err != nil || n < 1 {
				return fmt.Errorf("invalid quantity: %s", args[2])
			}
			qty = n
		}
		return addToCart(ctx, client, cartDir, args[1], qty)
	case "cart-clear":
		return clearCart(cartDir)
	case "orders":
		return listOrders(ctx, client)
	case "place":
		if len(args) < 2 {
			return fmt.Errorf("place requires a user id")
		}
		return place(ctx, client, cartDir, args[1])
	default:
		return fmt.Errorf("unknown command: %s", args[0])
	}
}

func listProducts(ctx context.Context, client *storefront.Client) error {
	products, err := client.ListProducts(ctx)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tPRICE\tCATEGORY")
	for _, p := range products {
		fmt.Fprintf(w, "%s\t%s\t$%.2f\t%s\n", p.ID.Hex(), p.Name, p.Price, p.Category)
	}
	return w.Flush()
}

func showCart(cartDir string) error {
	c, err := cart.Load(cartDir)
	if err != nil {
		return err
	}

	if c.Empty() {
		fmt.Println("Cart is empty")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "PRODUCT\tPRICE\tQTY")
	for _, l := range c.Lines {
		fmt.Fprintf(w, "%s\t$%.2f\t%d\n", l.ProductID, l.Price, l.Quantity)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Printf("Total: $%s\n", c.Total().StringFixed(2))
	return nil
}

func addToCart(ctx context.Context, client *storefront.Client, cartDir, productID string, qty int) error {
	// The unit price is captured at add time, as the web cart did.
	product, err := client.GetProduct(ctx, productID)
	if err != nil {
		return err
	}

	c, err := cart.Load(cartDir)
	if err != nil {
		return err
	}

	c.Add(cart.Line{ProductID: product.ID.Hex(), Price: product.Price, Quantity: qty})
	if err := c.Save(); err != nil {
		return err
	}

	fmt.Printf("Added %d x %s ($%.2f each)\n", qty, product.Name, product.Price)
	return nil
}

func clearCart(cartDir string) error {
	c, err := cart.Load(cartDir)
	if err != nil {
		return err
	}
	if err := c.Clear(); err != nil {
		return err
	}
	fmt.Println("Cart cleared")
	return nil
}

func listOrders(ctx context.Context, client *storefront.Client) error {
	view := storefront.NewView(client)
	view.LoadOrders(ctx)

	if view.State() == storefront.StateErrored {
		fmt.Printf("Error: %s\n", view.Err())
		return nil
	}

	orders := view.Orders()
	if len(orders) == 0 {
		fmt.Println("No orders yet")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ORDER\tUSER\tPRODUCTS\tTOTAL\tCREATED")
	for _, o := range orders {
		names := ""
		for i, p := range o.Products {
			if i > 0 {
				names += ", "
			}
			names += p.Display()
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t$%.2f\t%s\n",
			o.ID.Hex(), o.User.Display(), names, o.TotalPrice, o.CreatedAt.Local().Format("2006-01-02 15:04"))
	}
	return w.Flush()
}

func place(ctx context.Context, client *storefront.Client, cartDir, userID string) error {
	c, err := cart.Load(cartDir)
	if err != nil {
		return err
	}

	view := storefront.NewView(client)
	result := view.Place(ctx, userID, c)
	fmt.Println(result.Message)
	if !result.OK {
		os.Exit(1)
	}
	return nil
}
