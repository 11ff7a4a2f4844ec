package handler

import (
	"context"
	"time"

	"gamedeals/internal/domain/service/catalog"
	"gamedeals/internal/domain/value"
)

type DealService interface {
	OpenSession(ctx context.Context) *catalog.Session
	Views() catalog.ViewBuilder
	Stores() []value.Store
}

type Handler struct {
	svc            DealService
	maxDeals       int
	sessionTimeout time.Duration
}

func New(svc DealService, maxDeals int, sessionTimeout time.Duration) *Handler {
	return &Handler{
		svc:            svc,
		maxDeals:       maxDeals,
		sessionTimeout: sessionTimeout,
	}
}
