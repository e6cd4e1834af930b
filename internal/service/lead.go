package service

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// smsMaxRunes is the channel limit for a plain SMS at the provider. It is
// an external constraint, not a tunable.
const smsMaxRunes = 45

var (
	ErrInvalidPayload = errors.New("invalid payload")
	ErrNoRecipients   = errors.New("no sms recipients configured")
)

// SMSTooLongError reports the length of the last text that was attempted.
type SMSTooLongError struct {
	Length int
}

func (e *SMSTooLongError) Error() string {
	return fmt.Sprintf("문자 길이 %d자(최대 %d자). 입력값을 줄여주세요.", e.Length, smsMaxRunes)
}

// Lead is a single vehicle-sale submission. Mileage is opaque text and is
// interpolated as-is.
type Lead struct {
	CarNumber string
	Phone     string
	Region    string
	Mileage   string
}

// Validate requires every field to be non-empty after trimming.
func (l Lead) Validate() error {
	for _, field := range []string{l.CarNumber, l.Phone, l.Region, l.Mileage} {
		if strings.TrimSpace(field) == "" {
			return ErrInvalidPayload
		}
	}
	return nil
}

// SMSText renders the lead for a single SMS. When the space-separated form
// exceeds the limit, a slash-separated form is tried before giving up.
func (l Lead) SMSText() (string, error) {
	text := fmt.Sprintf("%s %s %s %skm", l.CarNumber, l.Phone, l.Region, l.Mileage)
	if utf8.RuneCountInString(text) > smsMaxRunes {
		text = fmt.Sprintf("%s/%s/%s/%skm", l.CarNumber, l.Phone, l.Region, l.Mileage)
	}
	if n := utf8.RuneCountInString(text); n > smsMaxRunes {
		return "", &SMSTooLongError{Length: n}
	}
	return text, nil
}

// MailSubject and MailBody render the admin notification mail.
func (l Lead) MailSubject() string {
	return "중고차 빠른 판매 등록 - " + l.CarNumber
}

func (l Lead) MailBody() string {
	return strings.Join([]string{
		"차량번호: " + l.CarNumber,
		"연락처: " + l.Phone,
		"지역: " + l.Region,
		"운행거리: " + l.Mileage + " km",
	}, "\n")
}

// digitsOnly strips everything but ASCII digits from a configured phone
// number, matching what the SMS provider accepts in to/from fields.
func digitsOnly(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, s)
}
