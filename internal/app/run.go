package app

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"tempdash-server/internal/config"
	"tempdash-server/internal/db"
	"tempdash-server/internal/httpapi"
	"tempdash-server/internal/migrate"
	dashboard "tempdash-server/internal/modules/dashboard"
	dashboardviews "tempdash-server/internal/modules/dashboard/views"
	metar "tempdash-server/internal/modules/metar"
	readings "tempdash-server/internal/modules/readings"
	"tempdash-server/internal/mqtt"
)

func Run(ctx context.Context, cfg config.Config) error {
	slog.Info("config loaded",
		"appEnv", cfg.AppEnv,
		"logLevel", cfg.LogLevel.String(),
		"httpAddr", cfg.HTTPAddr,
		"staticDir", cfg.StaticDir,
		"defaultLocation", cfg.DefaultLocation,
		"dbDriver", cfg.Driver,
		"sqlitePath", cfg.Path,
		"mqttEnabled", cfg.MQTTEnabled,
		"mqttBroker", cfg.MQTTBroker,
		"mqttTopic", cfg.MQTTTopic,
		"metarStation", cfg.MetarDefaultStation,
	)

	dbConn, err := db.Open(cfg)
	if err != nil {
		return err
	}
	defer func() {
		closeErr := db.Close(dbConn)
		if closeErr != nil {
			slog.Error("db close", "error", closeErr)
		}
	}()

	if err := migrate.Run(dbConn); err != nil {
		return err
	}

	if err := dashboardviews.LoadTemplates(); err != nil {
		return err
	}

	mux := httpapi.NewMux(dbConn, cfg.StaticDir)
	repo := readings.RegisterFeature(mux, dbConn, cfg.DefaultLocation)
	metar.RegisterFeature(mux, cfg)
	dashboard.RegisterFeature(mux, repo, cfg.DefaultLocation)

	var mqttSubscriber *mqtt.Subscriber
	if cfg.MQTTEnabled {
		mqttSubscriber, err = mqtt.NewSubscriber(cfg, slog.Default())
		if err != nil {
			return err
		}
		// Set the handler before Connect so OnConnectHandler can subscribe
		// immediately; the broker may send queued messages right after CONNACK.
		readings.RegisterMQTTHandler(mqttSubscriber, repo, cfg.DefaultLocation, slog.Default())

		// Short timeout for the initial connect so a down broker doesn't block startup.
		connectCtx, connectCancel := context.WithTimeout(ctx, 5*time.Second)
		err = mqttSubscriber.Connect(connectCtx)
		connectCancel()
		if err != nil {
			slog.Warn("mqtt connection failed (continuing without mqtt)", "error", err)
		}
	}

	srv := httpapi.NewServer(cfg, mux)

	errCh := make(chan error, 1)
	go func() {
		slog.Info("http listening", "addr", cfg.HTTPAddr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if mqttSubscriber != nil {
		slog.Info("mqtt disconnecting")
		mqttSubscriber.Disconnect()
	}

	slog.Info("http shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}

	err = <-errCh
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return ctx.Err()
}
