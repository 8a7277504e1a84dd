package domain

import "time"

// Message kinds. The type tag determines which fields are present; no
// other tags are valid.
const (
	MessageText = "text"
	MessageFile = "file"
)

// Message is one entry in a box: a text snippet or a reference to an
// uploaded file.
type Message struct {
	Type     string `json:"type"`
	Text     string `json:"text,omitempty"`
	FileName string `json:"fileName,omitempty"`
	FileURL  string `json:"fileUrl,omitempty"`
}

// Box is the stored drop box document. Code is the public lookup key;
// DeleteAfter is always strictly after CreatedAt.
type Box struct {
	ID          string    `json:"id"`
	Code        string    `json:"code"`
	Data        []Message `json:"data"`
	Password    string    `json:"password,omitempty"`
	Name        string    `json:"name,omitempty"`
	Description string    `json:"description,omitempty"`
	OwnerName   string    `json:"ownerName,omitempty"`
	OwnerEmail  string    `json:"ownerEmail,omitempty"`
	DeleteAfter time.Time `json:"deleteAfter"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// CreateBoxReq is the box creation payload, validated before it reaches
// the service layer.
type CreateBoxReq struct {
	Data        []Message `json:"data"`
	DeleteAfter string    `json:"deleteAfter"`
	Description string    `json:"description,omitempty"`
	Name        string    `json:"name,omitempty"`
	OwnerEmail  string    `json:"ownerEmail,omitempty"`
	OwnerName   string    `json:"ownerName,omitempty"`
	Password    string    `json:"password,omitempty"`
}

type CreateBoxRes struct {
	Status string `json:"status"`
	Code   string `json:"code"`
	Token  string `json:"token"`
}

type GetBoxReq struct {
	Code     string `json:"code"`
	Password string `json:"password,omitempty"`
}

// GetBoxRes returns the full stored record, password included, to a
// caller that passed the access gate.
type GetBoxRes struct {
	Status string `json:"status"`
	Box
}

type OTPRequestReq struct {
	Contact string `json:"contact"`
}

type OTPRequestRes struct {
	Status   string `json:"status"`
	Envelope string `json:"envelope"`
}

type OTPVerifyReq struct {
	Contact  string `json:"contact"`
	OTP      string `json:"otp"`
	Envelope string `json:"envelope"`
}

type AdminLoginReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// TokenRes is the success envelope for both login flows.
type TokenRes struct {
	Status string `json:"status"`
	Token  string `json:"token"`
}

type SessionRes struct {
	Status    string `json:"status"`
	SessionID string `json:"sessionId"`
}
