package auth

import (
	"strconv"
	"strings"
	"time"

	"boxdrop/internal/apierr"
)

// OTPValidity is how long an issued OTP stays verifiable.
const OTPValidity = 10 * time.Minute

// OTPIssuer mints and verifies stateless one time passwords. All
// verification material lives in the envelope itself, so the server
// keeps no OTP state and a verified envelope stays valid until its TTL.
type OTPIssuer struct {
	signer *Signer
	now    func() time.Time
}

func NewOTPIssuer(signer *Signer) *OTPIssuer {
	return &OTPIssuer{signer: signer, now: time.Now}
}

// Issue returns a 6 digit OTP bound to contact and the envelope that
// later proves it: "hex(HMAC(otp.contact.ttl)).ttl" with ttl in epoch
// milliseconds.
func (o *OTPIssuer) Issue(contact string) (otp, envelope string, err error) {
	otp, err = GenerateCode()
	if err != nil {
		return "", "", err
	}
	ttl := strconv.FormatInt(o.now().Add(OTPValidity).UnixMilli(), 10)
	mac := o.signer.Sign(otp + "." + contact + "." + ttl)
	return otp, mac + "." + ttl, nil
}

// Verify checks otp against envelope for contact. Expired envelopes
// fail OTP_TIMEOUT before any MAC comparison; malformed, tampered or
// mismatched ones fail INVALID_OTP. The comparison is constant time.
func (o *OTPIssuer) Verify(contact, otp, envelope string) error {
	idx := strings.LastIndex(envelope, ".")
	if idx < 0 {
		return apierr.InvalidOtp("OTP is not valid")
	}
	mac, ttl := envelope[:idx], envelope[idx+1:]
	ms, err := strconv.ParseInt(ttl, 10, 64)
	if err != nil {
		return apierr.InvalidOtp("OTP is not valid")
	}
	if ms < o.now().UnixMilli() {
		return apierr.OtpTimeout("OTP has expired")
	}
	expected := o.signer.Sign(otp + "." + contact + "." + ttl)
	if !o.signer.Equal(expected, mac) {
		return apierr.InvalidOtp("OTP is not valid")
	}
	return nil
}
