package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"gamedeals/internal/domain/service/catalog"
	"gamedeals/internal/domain/value"
	"gamedeals/pkg/httpx/reply"
	"gamedeals/pkg/httpx/req"
	"gamedeals/pkg/logx"
	"gamedeals/pkg/lox"
	"gamedeals/pkg/rest"
)

type dealService interface {
	OpenSession(ctx context.Context) *catalog.Session
	Views() catalog.ViewBuilder
	Stores() []value.Store
}

type DealServer struct {
	dealService    dealService
	sessionTimeout time.Duration
}

func NewDealServer(dealService dealService, sessionTimeout time.Duration) DealServer {
	return DealServer{
		dealService:    dealService,
		sessionTimeout: sessionTimeout,
	}
}

// getV1Deals runs one page session per request. A session that does not
// finish in time is reported in the loading state.
func (s DealServer) getV1Deals(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	query := rest.DealsQuery{
		Q:       r.URL.Query().Get("q"),
		Country: strings.ToUpper(r.URL.Query().Get("country")),
	}

	if err := req.Validate(ctx, &query); err != nil {
		return fmt.Errorf("req.Validate: %w", err)
	}

	sessionCtx, cancel := context.WithTimeout(ctx, s.sessionTimeout)
	defer cancel()

	session := s.dealService.OpenSession(sessionCtx)
	defer session.Close()

	if err := session.Wait(sessionCtx); err != nil {
		logger(ctx).Warn("page session not finished", slog.String(logx.FieldQuery, query.Q), logx.Error(err))
	}

	snapshot := session.Search(query.Q)
	views := s.dealService.Views().ForCountry(query.Country)

	reply.JSON(ctx, w, http.StatusOK, newRESTDeals(
		snapshot,
		views.Render(ctx, snapshot.Deals),
		views.CountryCode(),
		views.RateText(),
	))

	return nil
}

func (s DealServer) getV1Stores(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	reply.JSON(ctx, w, http.StatusOK, lox.Map(s.dealService.Stores(), newRESTStore))

	return nil
}

func (s DealServer) getV1DealBuy(w http.ResponseWriter, r *http.Request) error {
	location, err := s.dealService.Views().BuyURL(chi.URLParam(r, "id"))
	if err != nil {
		return fmt.Errorf("views.BuyURL: %w", err)
	}

	reply.Redirect(w, r, location)

	return nil
}
