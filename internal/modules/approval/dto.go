package approval

const (
	DecisionApprove = "approve"
	DecisionReject  = "reject"
)

type ReviewCancellationRequest struct {
	Decision              string  `json:"decision" binding:"required"`
	PenaltyAmount         float64 `json:"penalty_amount"`
	ApplyGST              bool    `json:"apply_gst"`
	CancelOriginalInvoice bool    `json:"cancel_original_invoice"`
}

type ReviewModificationRequest struct {
	Decision string `json:"decision" binding:"required"`
}
