package esewa

// CallbackPayload is the base64-JSON document eSewa appends to the
// success redirect as the `data` query parameter.
//
// total_amount arrives as a display string and may carry thousands
// separators ("1,000"), so it stays a string here; callers parse it
// with the separators stripped.
type CallbackPayload struct {
	TransactionUUID  string `json:"transaction_uuid"`
	TransactionCode  string `json:"transaction_code"`
	Status           string `json:"status"`
	TotalAmount      string `json:"total_amount"`
	ProductCode      string `json:"product_code"`
	SignedFieldNames string `json:"signed_field_names"`
	Signature        string `json:"signature"`
}

// Gateway statuses seen in callbacks.
const (
	StatusComplete   = "COMPLETE"
	StatusPending    = "PENDING"
	StatusCanceled   = "CANCELED"
	StatusFullRefund = "FULL_REFUND"
)
