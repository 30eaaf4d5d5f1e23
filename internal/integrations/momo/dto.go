package momo

// AuthResponse — ответ эндпоинта /collection/token/.
type AuthResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

// PayerDTO — получатель запроса на списание (MSISDN — номер телефона).
type PayerDTO struct {
	PartyIDType string `json:"partyIdType"`
	PartyID     string `json:"partyId"`
}

// RequestToPayPayload — тело POST /collection/v1_0/requesttopay.
// Суммы MoMo принимает строками.
type RequestToPayPayload struct {
	Amount     string   `json:"amount"`
	Currency   string   `json:"currency"`
	ExternalID string   `json:"externalId"`
	Payer      PayerDTO `json:"payer"`
}

// TransactionDTO — ответ GET /collection/v1_0/requesttopay/{referenceId}.
type TransactionDTO struct {
	FinancialTransactionID string   `json:"financialTransactionId,omitempty"`
	ExternalID             string   `json:"externalId"`
	Amount                 string   `json:"amount"`
	Currency               string   `json:"currency"`
	Payer                  PayerDTO `json:"payer"`
	Status                 string   `json:"status"`
	Reason                 string   `json:"reason,omitempty"`
}
