package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"unicode/utf8"

	"vehicle_acquisition/internal/domain/entities"
	"vehicle_acquisition/internal/domain/outbound"
	"vehicle_acquisition/internal/usecase/interfaces"
)

var ErrDeliveryFailed = errors.New("package delivery failed")

// DeliveryResult is the outcome of a delivery attempt.
type DeliveryResult struct {
	Success bool
	Status  int
	Error   string
}

// IDeliveryUseCase sends the normalized case package to the automation channel.
//
//   - POST /cases/{id}/deliver => Deliver()
//
// The channel is attempted once. Upstream failures come back in the result.

type IDeliveryUseCase interface {
	Deliver(ctx context.Context, caseID string, user entities.ActingUser, documentURL string) (DeliveryResult, error)
}

type DeliveryUseCase struct {
	cases   interfaces.ICaseRepository
	builder *outbound.Builder
	channel interfaces.IDeliveryChannel
}

var _ IDeliveryUseCase = (*DeliveryUseCase)(nil)

func NewDeliveryUseCase(cases interfaces.ICaseRepository, builder *outbound.Builder, channel interfaces.IDeliveryChannel) *DeliveryUseCase {
	return &DeliveryUseCase{cases: cases, builder: builder, channel: channel}
}

func (u *DeliveryUseCase) Deliver(ctx context.Context, caseID string, user entities.ActingUser, documentURL string) (DeliveryResult, error) {
	caseID = strings.TrimSpace(caseID)
	if caseID == "" {
		return DeliveryResult{}, ErrInvalidCaseID
	}
	agg, err := u.cases.GetAggregate(ctx, caseID)
	if err != nil {
		return DeliveryResult{}, err
	}
	if agg.Case.ID == "" {
		return DeliveryResult{}, ErrCaseNotFound
	}

	if u.channel == nil {
		return DeliveryResult{Success: false, Error: "delivery channel not configured"}, nil
	}

	pkg := u.builder.Build(agg, user, strings.TrimSpace(documentURL))
	record, err := json.Marshal(pkg)
	if err != nil {
		return DeliveryResult{Success: false, Error: fmt.Errorf("%w: %v", ErrDeliveryFailed, err).Error()}, nil
	}

	status, body, err := u.channel.Deliver(ctx, record)
	if err != nil {
		err = fmt.Errorf("%w: %v", ErrDeliveryFailed, err)
		log.Printf("[delivery][usecase] failed case_id=%s err=%v", caseID, err)
		return DeliveryResult{Success: false, Status: status, Error: err.Error()}, nil
	}
	if status < 200 || status >= 300 {
		err = fmt.Errorf("%w: status %d: %s", ErrDeliveryFailed, status, truncateBody(body))
		log.Printf("[delivery][usecase] rejected case_id=%s status=%d", caseID, status)
		return DeliveryResult{Success: false, Status: status, Error: err.Error()}, nil
	}

	log.Printf("[delivery][usecase] delivered case_id=%s status=%d", caseID, status)
	return DeliveryResult{Success: true, Status: status}, nil
}

func truncateBody(body []byte) string {
	const limit = 200
	s := strings.TrimSpace(string(body))
	if len(s) <= limit {
		return s
	}
	cut := limit
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "..."
}
