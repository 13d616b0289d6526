package model

// SMSRecipient 簡訊收件人
type SMSRecipient struct {
	Name  string `json:"name"`
	Phone string `json:"phone" binding:"required"`
}

type SMSFailure struct {
	Recipient SMSRecipient `json:"recipient"`
	Error     string       `json:"error"`
}

// SMSSendResult 批次發送結果，失敗不重試
type SMSSendResult struct {
	Success     bool           `json:"success"`
	SentCount   int            `json:"sentCount"`
	FailCount   int            `json:"failCount"`
	SuccessList []SMSRecipient `json:"successList"`
	FailList    []SMSFailure   `json:"failList"`
}

type SendSMSRequest struct {
	Recipients []SMSRecipient `json:"recipients" binding:"required,dive"`
	Message    string         `json:"message"`
}
