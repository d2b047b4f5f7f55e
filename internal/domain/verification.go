package domain

// LinkVerification is a pending link-based verification record.
// PK: account_id. ExpiresAt is a Unix timestamp used as DynamoDB TTL;
// expiry is still checked at redemption time because TTL deletion is lazy.
type LinkVerification struct {
	AccountID   string `json:"account_id" dynamodbav:"account_id"`
	HashedToken string `json:"-" dynamodbav:"hashed_token"`
	CreatedAt   int64  `json:"created_at" dynamodbav:"created_at"`
	ExpiresAt   int64  `json:"expires_at" dynamodbav:"expires_at"`
}

// OTPVerification is a pending code-based verification record.
// PK: account_id, SK: otp_id. An account may accumulate several rows
// (issue, then resend); redemption trusts the first row and deletes all.
type OTPVerification struct {
	AccountID string `json:"account_id" dynamodbav:"account_id"`
	OTPID     string `json:"otp_id" dynamodbav:"otp_id"`
	HashedOTP string `json:"-" dynamodbav:"hashed_otp"`
	CreatedAt int64  `json:"created_at" dynamodbav:"created_at"`
	ExpiresAt int64  `json:"expires_at" dynamodbav:"expires_at"`
}
