package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"

	"museum-booking/internal/pkg/config"
	"museum-booking/internal/pkg/errs"
	"museum-booking/internal/usecase/commands"
)

// wire formats of the remote booking endpoint
type submitPayload struct {
	ResourceID string `json:"resourceId"`
	SlotDate   string `json:"slotDate"`
	SlotTime   string `json:"slotTime"`
	Quantity   int    `json:"quantity"`
	TotalFee   int64  `json:"totalFee"`
}

type submitReply struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// SubmissionClient posts the booking tuple to the remote endpoint and
// waits for its verdict. No retry: a failed attempt is reported back
// and the caller decides whether to resubmit.
type SubmissionClient struct {
	httpClient *http.Client
	submitURL  string
}

func NewSubmissionClient(cfg config.GatewayConfig) *SubmissionClient {
	return &SubmissionClient{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		submitURL:  cfg.SubmitURL,
	}
}

func (c *SubmissionClient) Submit(ctx context.Context, req commands.SubmissionRequest) (commands.SubmissionResult, error) {
	payload := submitPayload{
		ResourceID: req.ResourceID.String(),
		SlotDate:   req.SlotDate,
		SlotTime:   req.SlotTime,
		Quantity:   req.Quantity,
		TotalFee:   req.TotalFeeCents,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return commands.SubmissionResult{}, errs.Wrap(err, "failed to encode submission payload")
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.submitURL, bytes.NewReader(body))
	if err != nil {
		return commands.SubmissionResult{}, errs.Wrap(err, "failed to build submission request")
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return commands.SubmissionResult{}, errs.Wrap(err, "submission request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return commands.SubmissionResult{}, errs.Newf("submission endpoint returned status %d", resp.StatusCode)
	}

	var reply submitReply
	if err := json.NewDecoder(resp.Body).Decode(&reply); err != nil {
		return commands.SubmissionResult{}, errs.Wrap(err, "failed to decode submission response")
	}

	return commands.SubmissionResult{
		Success: reply.Success,
		Message: reply.Message,
	}, nil
}
