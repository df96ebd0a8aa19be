package provider

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

const defaultGreenAPITimeout = 10 * time.Second

type greenAPIRequest struct {
	ChatID  string `json:"chatId"`
	Message string `json:"message"`
}

type greenAPIResponse struct {
	IDMessage string `json:"idMessage"`
	Error     string `json:"error"`
}

// GreenAPIProvider delivers SMS preferences over GREEN-API's WhatsApp
// sendMessage endpoint.
type GreenAPIProvider struct {
	client      *resty.Client
	apiURL      string
	instanceID  string
	token       string
	countryCode string
	logger      *zap.Logger
}

func NewGreenAPIProvider(apiURL, instanceID, token, countryCode string, logger *zap.Logger) (*GreenAPIProvider, error) {
	client := resty.New()
	client.SetTimeout(defaultGreenAPITimeout)
	client.SetRetryCount(0)

	return NewGreenAPIProviderWithClient(apiURL, instanceID, token, countryCode, client, logger)
}

func NewGreenAPIProviderWithClient(
	apiURL, instanceID, token, countryCode string,
	client *resty.Client,
	logger *zap.Logger,
) (*GreenAPIProvider, error) {
	trimmedURL := strings.TrimRight(strings.TrimSpace(apiURL), "/")
	if trimmedURL == "" {
		return nil, fmt.Errorf("green-api url is required")
	}
	if strings.TrimSpace(instanceID) == "" || strings.TrimSpace(token) == "" {
		return nil, fmt.Errorf("green-api credentials are required")
	}
	if client == nil {
		return nil, fmt.Errorf("resty client is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	if client.GetClient().Timeout == 0 {
		client.SetTimeout(defaultGreenAPITimeout)
	}
	client.SetRetryCount(0)

	return &GreenAPIProvider{
		client:      client,
		apiURL:      trimmedURL,
		instanceID:  strings.TrimSpace(instanceID),
		token:       strings.TrimSpace(token),
		countryCode: countryCode,
		logger:      logger,
	}, nil
}

// SendSMS normalizes the number and posts the message. A false return means
// the provider rejected the message; an error means the call itself failed.
func (p *GreenAPIProvider) SendSMS(ctx context.Context, to, message string) (bool, error) {
	if p == nil || p.client == nil {
		return false, fmt.Errorf("provider is not initialized")
	}

	formatted, err := NormalizePhoneNumber(to, p.countryCode)
	if err != nil {
		return false, err
	}

	url := fmt.Sprintf("%s/waInstance%s/sendMessage/%s", p.apiURL, p.instanceID, p.token)
	reqBody := greenAPIRequest{
		ChatID:  formatted + "@c.us",
		Message: message,
	}

	var respBody greenAPIResponse
	response, err := p.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(reqBody).
		SetResult(&respBody).
		Post(url)
	if err != nil {
		return false, &ProviderError{
			Message: "green-api request failed",
			Cause:   err,
		}
	}
	if response == nil {
		return false, &ProviderError{Message: "green-api returned empty response"}
	}

	statusCode := response.StatusCode()
	if statusCode < http.StatusOK || statusCode >= http.StatusMultipleChoices {
		p.logger.Error("green-api returned http error",
			zap.Int("status", statusCode),
			zap.String("body", strings.TrimSpace(response.String())),
		)
		return false, nil
	}

	switch {
	case respBody.IDMessage != "":
		p.logger.Info("green-api message sent",
			zap.String("messageId", respBody.IDMessage),
		)
		return true, nil
	case respBody.Error != "":
		p.logger.Error("green-api rejected message",
			zap.String("error", respBody.Error),
		)
		return false, nil
	default:
		p.logger.Warn("green-api returned unexpected response shape",
			zap.String("body", strings.TrimSpace(response.String())),
		)
		return false, nil
	}
}
