package utils

import (
	"fmt"
	"time"

	"formaplus/config"

	"github.com/go-resty/resty/v2"
)

// GatewayPayment is the gateway's view of a payment transaction
type GatewayPayment struct {
	Reference string    `json:"reference"`
	Status    string    `json:"status"` // CREATED, SUCCESS, FAILED
	Amount    float64   `json:"amount"`
	Currency  string    `json:"currency"`
	PaidAt    time.Time `json:"paid_at"`
}

// VerifyGatewayPayment fetches the payment transaction from the gateway
// sandbox and reports whether it succeeded. The checkout flow calls this
// before a payment is recorded against an enrollment record.
func VerifyGatewayPayment(reference string) (*GatewayPayment, error) {
	client := resty.New()
	client.SetTimeout(15 * time.Second)

	var payment GatewayPayment
	resp, err := client.R().
		SetHeader("X-Api-Key", config.AppConfig.GatewayApiKey).
		SetHeader("X-Api-Secret", config.AppConfig.GatewaySecretKey).
		SetHeader("X-Api-Version", config.AppConfig.GatewayApiVersion).
		SetResult(&payment).
		Get(config.AppConfig.GatewayApiURL + "payments/" + reference)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("gateway returned status %d for payment %s", resp.StatusCode(), reference)
	}

	return &payment, nil
}
