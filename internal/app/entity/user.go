package entity

type CustomerID string

func (c CustomerID) String() string {
	return string(c)
}

func (c CustomerID) Valid() bool {
	return len(c) != 0
}

type CustomerIDCtxKey struct{}

// CustomerIDCtx is what the token middleware learned about the caller.
// Reason explains a non-OK StatusCode to the client.
type CustomerIDCtx struct {
	CustomerID CustomerID
	StatusCode int
	Reason     string
}

func CreateCustomerIDCtx(customerID CustomerID, code int) CustomerIDCtx {
	return CustomerIDCtx{
		CustomerID: customerID,
		StatusCode: code,
	}
}

func CreateRejectedCustomerIDCtx(code int, reason string) CustomerIDCtx {
	return CustomerIDCtx{
		StatusCode: code,
		Reason:     reason,
	}
}
