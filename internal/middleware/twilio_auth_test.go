package middleware

import (
	"crypto/hmac"
	"crypto/sha1"
	"encoding/base64"
	"net/http/httptest"
	"net/url"
	"sort"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/twilio/twilio-go/client"
)

// sign produces the X-Twilio-Signature Twilio sends for a form webhook
func sign(authToken, url string, params map[string]string) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	data := url
	for _, k := range keys {
		data += k + params[k]
	}
	h := hmac.New(sha1.New, []byte(authToken))
	h.Write([]byte(data))
	return base64.StdEncoding.EncodeToString(h.Sum(nil))
}

func TestSignMatchesTwilioValidator(t *testing.T) {
	// Example from Twilio's webhook security documentation
	params := map[string]string{
		"CallSid": "CA1234567890ABCDE",
		"Caller":  "+12349013030",
		"Digits":  "1234",
		"From":    "+12349013030",
		"To":      "+18005551212",
	}
	u := "https://mycompany.com/myapp.php?foo=1&bar=2"
	if got := sign("12345", u, params); got != "0/KCTR6DLpKmkAf8muzZqo1nDgQ=" {
		t.Errorf("signature = %q", got)
	}

	validator := client.NewRequestValidator("12345")
	if !validator.Validate(u, params, "0/KCTR6DLpKmkAf8muzZqo1nDgQ=") {
		t.Error("validator rejected the documented signature")
	}
}

func newSignedApp(token string) *fiber.App {
	app := fiber.New()
	app.Post("/webhook/whatsapp", ValidateTwilioSignature(token), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	return app
}

func TestValidateTwilioSignature(t *testing.T) {
	app := newSignedApp("secret")
	form := url.Values{"From": {"whatsapp:+911"}, "Body": {"RGA"}}

	params := map[string]string{"From": "whatsapp:+911", "Body": "RGA"}
	sig := sign("secret", "http://example.com/webhook/whatsapp", params)
	withPort := sign("secret", "http://example.com:80/webhook/whatsapp", params)

	tests := []struct {
		name      string
		signature string
		want      int
	}{
		{"valid", sig, fiber.StatusOK},
		{"signed with port", withPort, fiber.StatusOK},
		{"missing", "", fiber.StatusUnauthorized},
		{"wrong", "bm9wZQ==", fiber.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "http://example.com/webhook/whatsapp", strings.NewReader(form.Encode()))
			req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
			if tt.signature != "" {
				req.Header.Set("X-Twilio-Signature", tt.signature)
			}
			resp, err := app.Test(req, -1)
			if err != nil {
				t.Fatal(err)
			}
			if resp.StatusCode != tt.want {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.want)
			}
		})
	}
}

func TestValidateTwilioSignatureWithoutToken(t *testing.T) {
	app := newSignedApp("")
	req := httptest.NewRequest("POST", "/webhook/whatsapp", nil)
	req.Header.Set("X-Twilio-Signature", "abc")
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusInternalServerError {
		t.Errorf("status = %d", resp.StatusCode)
	}
}
