package model

import "encoding/json"

// UserSummary is the partial user projection embedded in expanded orders.
type UserSummary struct {
	ID    string `json:"_id"`
	Email string `json:"email"`
}

// ProductSummary is the partial product projection embedded in expanded
// orders.
type ProductSummary struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
}

// UserRef is a reference to a user that is either unresolved (bare id) or
// resolved to a partial projection. It serialises as a plain string in the
// unresolved case and as an object in the resolved case.
type UserRef struct {
	ID   string
	User *UserSummary
}

// ResolvedUser builds a resolved reference.
func ResolvedUser(u UserSummary) UserRef {
	return UserRef{ID: u.ID, User: &u}
}

// UnresolvedUser builds a bare-id reference.
func UnresolvedUser(id string) UserRef {
	return UserRef{ID: id}
}

// Resolved reports whether the referenced user was found at read time.
func (r UserRef) Resolved() bool {
	return r.User != nil
}

// Display returns the email when resolved, the bare id otherwise.
func (r UserRef) Display() string {
	if r.User != nil && r.User.Email != "" {
		return r.User.Email
	}
	return r.ID
}

func (r UserRef) MarshalJSON() ([]byte, error) {
	if r.User != nil {
		return json.Marshal(r.User)
	}
	return json.Marshal(r.ID)
}

func (r *UserRef) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		r.User = nil
		return json.Unmarshal(data, &r.ID)
	}
	var summary UserSummary
	if err := json.Unmarshal(data, &summary); err != nil {
		return err
	}
	r.ID = summary.ID
	r.User = &summary
	return nil
}

// ProductRef is a reference to a product, with the same two-variant
// serialisation as UserRef.
type ProductRef struct {
	ID      string
	Product *ProductSummary
}

// ResolvedProduct builds a resolved reference.
func ResolvedProduct(p ProductSummary) ProductRef {
	return ProductRef{ID: p.ID, Product: &p}
}

// UnresolvedProduct builds a bare-id reference.
func UnresolvedProduct(id string) ProductRef {
	return ProductRef{ID: id}
}

// Resolved reports whether the referenced product was found at read time.
func (r ProductRef) Resolved() bool {
	return r.Product != nil
}

// Display returns the product name when resolved, the bare id otherwise.
func (r ProductRef) Display() string {
	if r.Product != nil && r.Product.Name != "" {
		return r.Product.Name
	}
	return r.ID
}

func (r ProductRef) MarshalJSON() ([]byte, error) {
	if r.Product != nil {
		return json.Marshal(r.Product)
	}
	return json.Marshal(r.ID)
}

func (r *ProductRef) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		r.Product = nil
		return json.Unmarshal(data, &r.ID)
	}
	var summary ProductSummary
	if err := json.Unmarshal(data, &summary); err != nil {
		return err
	}
	r.ID = summary.ID
	r.Product = &summary
	return nil
}
