package usecase

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

var (
	ErrInvalidPaymentPayload          = errors.New("invalid mercado pago payload")
	ErrPaymentGatewayBadRequest       = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized     = errors.New("payment gateway unauthorized")
	ErrPaymentGatewayInvalidUsers     = errors.New("payment gateway invalid users involved")
	ErrPaymentGatewayCustomerNotFound = errors.New("payment gateway customer not found")
)

// sandboxPayerEmail is the fallback payer accepted by Mercado Pago test credentials.
const sandboxPayerEmail = "test_user_br@testuser.com"

// gatewayErrorRules maps fragments of provider error bodies to domain errors.
// Order matters: the first matching rule wins.
var gatewayErrorRules = []struct {
	fragments []string
	err       error
}{
	{[]string{"customer not found", `"code":2002`}, ErrPaymentGatewayCustomerNotFound},
	{[]string{"invalid users involved", `"code":2034`}, ErrPaymentGatewayInvalidUsers},
	{[]string{`"error":"unauthorized"`, `"status":401`}, ErrPaymentGatewayUnauthorized},
	{[]string{`"error":"bad_request"`, `"status":400`}, ErrPaymentGatewayBadRequest},
}

// classifyGatewayError returns the domain error for a provider failure, or err itself when
// nothing matches.
func classifyGatewayError(err error) error {
	if err == nil {
		return nil
	}
	msg := strings.ToLower(err.Error())
	for _, rule := range gatewayErrorRules {
		for _, f := range rule.fragments {
			if strings.Contains(msg, f) {
				return rule.err
			}
		}
	}
	return err
}

func paymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}

func nonEmptyString(m map[string]any, key string) bool {
	s, ok := m[key].(string)
	return ok && strings.TrimSpace(s) != ""
}

func payerHasID(payer map[string]any) bool {
	v, ok := payer["id"]
	if !ok || v == nil {
		return false
	}
	s := strings.TrimSpace(fmt.Sprintf("%v", v))
	return s != "" && s != "<nil>"
}

func payerOf(m map[string]any) (map[string]any, bool) {
	payer, ok := m["payer"].(map[string]any)
	return payer, ok
}

func hasPayer(m map[string]any) bool {
	payer, ok := payerOf(m)
	if !ok {
		return false
	}
	return nonEmptyString(payer, "email") || payerHasID(payer)
}

func sandboxToken() bool {
	return strings.HasPrefix(strings.TrimSpace(os.Getenv("MERCADOPAGO_ACCESS_TOKEN")), "TEST-")
}

// fillPayerDefaults sets payer.type and, on sandbox credentials, a payer email when the
// request carries neither id nor email.
func fillPayerDefaults(m map[string]any) {
	if v, ok := m["payer"]; !ok || v == nil {
		m["payer"] = map[string]any{}
	}
	payer, ok := payerOf(m)
	if !ok {
		return
	}
	if _, ok := payer["type"]; !ok {
		payer["type"] = "customer"
	}
	if payerHasID(payer) || nonEmptyString(payer, "email") {
		return
	}
	if email := strings.TrimSpace(os.Getenv("MERCADOPAGO_TEST_PAYER_EMAIL")); email != "" {
		payer["email"] = email
	} else if sandboxToken() {
		payer["email"] = sandboxPayerEmail
	}
}

// mapSandboxPayer swaps the configured sandbox user id for its email; the test API rejects
// payer ids that belong to the collector account.
func mapSandboxPayer(m map[string]any) bool {
	payer, ok := payerOf(m)
	if !ok || !payerHasID(payer) || nonEmptyString(payer, "email") || !sandboxToken() {
		return false
	}

	userID := strings.TrimSpace(os.Getenv("MERCADOPAGO_TEST_PAYER_USER_ID"))
	email := strings.TrimSpace(os.Getenv("MERCADOPAGO_TEST_PAYER_EMAIL"))
	if userID == "" || email == "" {
		return false
	}
	if strings.TrimSpace(fmt.Sprintf("%v", payer["id"])) != userID {
		return false
	}

	payer["email"] = email
	delete(payer, "id")
	return true
}
