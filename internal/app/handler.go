package app

import (
	"encoding/json"
	"log"
	"net/http"

	"boxdrop/internal/apierr"
	"boxdrop/internal/domain"
	"boxdrop/internal/service"
	"boxdrop/internal/utility"
)

// Handler carries the services behind the HTTP surface.
type Handler struct {
	boxes *service.BoxService
	login *service.LoginService
}

func NewHandler(boxes *service.BoxService, login *service.LoginService) *Handler {
	return &Handler{boxes: boxes, login: login}
}

func (h *Handler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

func (h *Handler) HandleCreateBox(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateBoxReq
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if err := validateCreateBox(&req); err != nil {
		writeError(w, err)
		return
	}
	res, err := h.boxes.Create(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}
	utility.WriteJSON(w, http.StatusOK, domain.CreateBoxRes{
		Status: "SUCCESS",
		Code:   res.Code,
		Token:  res.Token,
	})
}

func (h *Handler) HandleGetBox(w http.ResponseWriter, r *http.Request) {
	var req domain.GetBoxReq
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if err := validateGetBox(&req); err != nil {
		writeError(w, err)
		return
	}
	box, err := h.boxes.Get(r.Context(), req.Code, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}
	utility.WriteJSON(w, http.StatusOK, domain.GetBoxRes{Status: "SUCCESS", Box: *box})
}

func (h *Handler) HandleOTPRequest(w http.ResponseWriter, r *http.Request) {
	var req domain.OTPRequestReq
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if req.Contact == "" {
		writeError(w, apierr.MissingField("[contact] is required"))
		return
	}
	envelope, err := h.login.RequestOTP(req.Contact)
	if err != nil {
		writeError(w, err)
		return
	}
	utility.WriteJSON(w, http.StatusOK, domain.OTPRequestRes{Status: "SUCCESS", Envelope: envelope})
}

func (h *Handler) HandleOTPVerify(w http.ResponseWriter, r *http.Request) {
	var req domain.OTPVerifyReq
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if req.Contact == "" {
		writeError(w, apierr.MissingField("[contact] is required"))
		return
	}
	if req.OTP == "" {
		writeError(w, apierr.MissingField("[otp] is required"))
		return
	}
	if req.Envelope == "" {
		writeError(w, apierr.MissingField("[envelope] is required"))
		return
	}
	token, err := h.login.VerifyOTP(req.Contact, req.OTP, req.Envelope)
	if err != nil {
		writeError(w, err)
		return
	}
	utility.WriteJSON(w, http.StatusOK, domain.TokenRes{Status: "SUCCESS", Token: token})
}

func (h *Handler) HandleAdminLogin(w http.ResponseWriter, r *http.Request) {
	var req domain.AdminLoginReq
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if req.Username == "" {
		writeError(w, apierr.MissingField("[username] is required"))
		return
	}
	if req.Password == "" {
		writeError(w, apierr.MissingField("[password] is required"))
		return
	}
	token, err := h.login.AdminLogin(req.Username, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}
	utility.WriteJSON(w, http.StatusOK, domain.TokenRes{Status: "SUCCESS", Token: token})
}

// HandleSession echoes the session ID bound to the presented token. It
// sits behind RequireBroker.
func (h *Handler) HandleSession(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := SessionID(r.Context())
	if !ok {
		writeError(w, apierr.Unauthenticated("Please login to continue"))
		return
	}
	utility.WriteJSON(w, http.StatusOK, domain.SessionRes{Status: "SUCCESS", SessionID: sessionID})
}

func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return apierr.InvalidFieldType("request body must be valid JSON")
	}
	return nil
}

// writeError maps err onto the error envelope. Anything outside the
// taxonomy is logged in full and surfaced as a generic internal error.
func writeError(w http.ResponseWriter, err error) {
	apiErr := apierr.From(err)
	if apiErr.Kind == apierr.KindInternal {
		log.Printf("internal error: %v", err)
	}
	utility.WriteJSON(w, apiErr.StatusCode, utility.ErrorRes{
		Status:  "ERROR",
		Error:   string(apiErr.Kind),
		Message: apiErr.Message,
	})
}
