package app

import (
	"fmt"
	"regexp"

	"boxdrop/internal/apierr"
	"boxdrop/internal/domain"
)

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]{2,}$`)

// validateCreateBox checks the create payload field by field and
// normalizes defaults. The service layer assumes this ran.
func validateCreateBox(req *domain.CreateBoxReq) error {
	if len(req.Data) == 0 {
		return apierr.MissingField("[data] is required")
	}
	for i := range req.Data {
		if err := validateMessage(i, &req.Data[i]); err != nil {
			return err
		}
	}
	if _, ok := domain.DeleteAfterOptions[req.DeleteAfter]; !ok {
		return apierr.InvalidFieldType("[deleteAfter] must be a valid option")
	}
	if req.OwnerEmail != "" && !emailRegex.MatchString(req.OwnerEmail) {
		return apierr.InvalidFieldType("[ownerEmail] must be a valid email address")
	}
	if req.Name == "" {
		req.Name = domain.DefaultBoxName
	}
	return nil
}

func validateMessage(i int, m *domain.Message) error {
	switch m.Type {
	case domain.MessageText:
		if m.Text == "" {
			return apierr.InvalidFieldType(fmt.Sprintf("[data][%d].text must be a non-empty string", i))
		}
	case domain.MessageFile:
		if m.FileName == "" {
			return apierr.InvalidFieldType(fmt.Sprintf("[data][%d].fileName must be a non-empty string", i))
		}
		if m.FileURL == "" {
			return apierr.InvalidFieldType(fmt.Sprintf("[data][%d].fileUrl must be a non-empty string", i))
		}
	case "":
		return apierr.InvalidFieldType(fmt.Sprintf("[data][%d].type is required", i))
	default:
		return apierr.InvalidFieldType(fmt.Sprintf("[data][%d].type must be either %q or %q",
			i, domain.MessageText, domain.MessageFile))
	}
	return nil
}

func validateGetBox(req *domain.GetBoxReq) error {
	if req.Code == "" {
		return apierr.MissingField("[code] is required")
	}
	return nil
}
