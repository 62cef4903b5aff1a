package types

// CustomerInfo is the checkout contact payload collected by the storefront.
// Comments may be empty; the transcript builder substitutes a placeholder.
type CustomerInfo struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	Comments string `json:"comments,omitempty"`
}
