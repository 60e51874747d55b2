package transport

import (
	"context"
	"net/http"
	"time"

	"github.com/neotheprogramist/solana-data-aggregator/internal/solana/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	TransactionQuerier interface {
		TransactionsByDay(ctx context.Context, day time.Time) ([]model.Transaction, error)
		TransactionByID(ctx context.Context, signature string) (model.Transaction, bool, error)
	}
	Pinger interface {
		Ping(ctx context.Context) error
	}
	HTTPMetrics interface {
		Instrument(route string, next http.Handler) http.Handler
	}
)
