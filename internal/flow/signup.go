package flow

import "unicode/utf8"

// SignupStep is the signup sub-state.
type SignupStep int

const (
	StepCollectingIdentity SignupStep = iota + 1
	StepAwaitingOTP
)

// OTPLength is the only code length accepted.
const OTPLength = 4

// Cities are the two launch cities; the first is the default.
var Cities = []string{"Mumbai", "Bangalore"}

// OTPVerifier checks a one-time code for a phone number.
type OTPVerifier interface {
	Verify(phone, code string) bool
}

// SignupForm is the two-step signup state.
type SignupForm struct {
	Name  string
	Phone string
	City  string
	OTP   string
	Step  SignupStep
}

func NewSignupForm() SignupForm {
	return SignupForm{City: Cities[0], Step: StepCollectingIdentity}
}

// CanRequestOTP reports whether step 1 is complete.
func (f SignupForm) CanRequestOTP() bool {
	return f.Step == StepCollectingIdentity && f.Name != "" && f.Phone != ""
}

// RequestOTP moves to the code step when step 1 is complete.
func (f *SignupForm) RequestOTP() bool {
	if !f.CanRequestOTP() {
		return false
	}
	f.Step = StepAwaitingOTP
	return true
}

// SetOTP stores code, truncated to OTPLength characters.
func (f *SignupForm) SetOTP(code string) {
	if utf8.RuneCountInString(code) > OTPLength {
		code = string([]rune(code)[:OTPLength])
	}
	f.OTP = code
}

// CanVerify reports whether the code has exactly OTPLength characters.
func (f SignupForm) CanVerify() bool {
	return f.Step == StepAwaitingOTP && utf8.RuneCountInString(f.OTP) == OTPLength
}

// Verify runs the code through v after the structural guard.
func (f SignupForm) Verify(v OTPVerifier) bool {
	if !f.CanVerify() {
		return false
	}
	if v == nil {
		return true
	}
	return v.Verify(f.Phone, f.OTP)
}

// ChangeNumber returns to step 1, keeping name and phone.
func (f *SignupForm) ChangeNumber() {
	f.Step = StepCollectingIdentity
}

// ToggleCity switches between the two cities.
func (f *SignupForm) ToggleCity() {
	if f.City == Cities[0] {
		f.City = Cities[1]
		return
	}
	f.City = Cities[0]
}
