package di

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"go.uber.org/fx"

	"github.com/polkiloo/iscore/internal/app"
	"github.com/polkiloo/iscore/internal/config"
	"github.com/polkiloo/iscore/internal/domain/model"
	"github.com/polkiloo/iscore/internal/domain/repository"
	"github.com/polkiloo/iscore/internal/storage/postgres"
	"github.com/polkiloo/iscore/internal/test"
)

func TestModuleComposesGraphWithReplacements(t *testing.T) {
	cfg := &config.Config{
		RunAddress:      ":0",
		DatabaseURI:     "postgres://stub",
		AccountAgeMode:  "calendar",
		Currency:        "EGP",
		LookupTimeout:   time.Second,
		ShutdownTimeout: time.Millisecond,
	}
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	stores := test.NewStores()
	stores.UserRepo.ByID[1] = &model.User{ID: 1, Name: "Mona", Email: "mona@example.com"}

	var facade *app.ViewFacade
	fxApp := fx.New(
		fx.NopLogger,
		fx.Supply(context.Background()),
		Module(
			fx.Replace(cfg),
			fx.Replace(logger),
			fx.Replace(&postgres.Storage{}),
			fx.Replace(fx.Annotate(stores.UserRepo, fx.As(new(repository.UserRepository)))),
			fx.Replace(fx.Annotate(stores.PaymentRepo, fx.As(new(repository.PaymentRepository)))),
			fx.Replace(fx.Annotate(stores.DebtRepo, fx.As(new(repository.DebtRepository)))),
			fx.Replace(fx.Annotate(stores.HistoryRepo, fx.As(new(repository.HistoryRepository)))),
			fx.Replace(fx.Annotate(stores.MixRepo, fx.As(new(repository.MixRepository)))),
		),
		fx.Populate(&facade),
	)

	if err := fxApp.Err(); err != nil {
		t.Fatalf("fx app returned error: %v", err)
	}
	t.Cleanup(func() { _ = fxApp.Stop(context.Background()) })
	if facade == nil {
		t.Fatal("expected view facade instance")
	}

	result, err := facade.View(context.Background(), model.ViewHome, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Profile == nil || result.Profile.Name != "Mona" {
		t.Fatalf("unexpected profile: %+v", result.Profile)
	}
	if stores.UserRepo.Calls != 1 {
		t.Fatalf("expected user lookup on replacement repository, got %d calls", stores.UserRepo.Calls)
	}

	stores.PaymentRepo.Records[1] = model.PaymentRecord{UserID: 1, OnTime: 8, Total: 10}
	result, err = facade.View(context.Background(), model.ViewPayment, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Payment == nil || result.Payment.Score != 80 {
		t.Fatalf("unexpected payment: %+v", result.Payment)
	}
}
