package api

// AuthResult is the body of a successful register or login call.
type AuthResult struct {
	Token      string `json:"token"`
	Identifier string `json:"identifier"`
	IsPaid     bool   `json:"is_paid"`
}

// Profile is the /me response. An empty Identifier means the server does
// not consider the caller authenticated, whatever the local state says.
type Profile struct {
	Identifier string `json:"identifier"`
	Email      string `json:"email"`
	IsPaid     bool   `json:"is_paid"`
}

// FilterValues is the /filters response: the valid exams, years and
// subjects for the requested scope.
type FilterValues struct {
	OK       bool     `json:"ok"`
	Exams    []string `json:"exams"`
	Years    []int    `json:"years"`
	Subjects []string `json:"subjects"`
}

// QuestionSummary is one entry of a /questions/{mode} list page.
type QuestionSummary struct {
	ID           string `json:"id"`
	Type         string `json:"type"`
	Paper        string `json:"paper"`
	Section      string `json:"section"`
	Marks        int    `json:"marks"`
	Page         int    `json:"page"`
	Exam         string `json:"exam"`
	Year         int    `json:"year"`
	Subject      string `json:"subject"`
	QuestionText string `json:"question_text"`
}

// VerifyResult is the /payments/verify response.
type VerifyResult struct {
	OK   bool `json:"ok"`
	Paid bool `json:"paid"`
}

// PaymentRecord is one entry of the payment history.
type PaymentRecord struct {
	CreatedAt string `json:"created_at"`
	Reference string `json:"reference"`
	Amount    int64  `json:"amount"`
	Currency  string `json:"currency"`
	Status    string `json:"status"`
	Provider  string `json:"provider"`
}

// ReconcileResult is the /admin/reconcile response.
type ReconcileResult struct {
	OK   bool `json:"ok"`
	Paid bool `json:"paid"`
}

// RefundRequest is the /admin/refund request body. AmountKobo nil means
// a full refund.
type RefundRequest struct {
	Reference    string `json:"reference"`
	AmountKobo   *int64 `json:"amount_kobo,omitempty"`
	MerchantNote string `json:"merchant_note,omitempty"`
}

// AuditEntry is one row of the admin audit log.
type AuditEntry struct {
	ID          int64  `json:"id"`
	CreatedAt   string `json:"created_at"`
	Action      string `json:"action"`
	Reference   string `json:"reference"`
	ActorIP     string `json:"actor_ip"`
	UserAgent   string `json:"user_agent"`
	PayloadJSON string `json:"payload_json"`
}
