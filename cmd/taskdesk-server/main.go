package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	server "github.com/taskdesk/taskdesk/internal"
	"github.com/taskdesk/taskdesk/internal/config"
	"github.com/taskdesk/taskdesk/internal/event"
	"github.com/taskdesk/taskdesk/internal/eventbus"
	"github.com/taskdesk/taskdesk/internal/notification"
	notificationrepo "github.com/taskdesk/taskdesk/internal/notification/repositoryimpl"
	"github.com/taskdesk/taskdesk/internal/pushnotification"
	pushsubrepo "github.com/taskdesk/taskdesk/internal/pushsubscription/repositoryimpl"
	"github.com/taskdesk/taskdesk/internal/seed"
	"github.com/taskdesk/taskdesk/internal/task"
	taskrepo "github.com/taskdesk/taskdesk/internal/task/repositoryimpl"
	"github.com/taskdesk/taskdesk/internal/user"
	userrepo "github.com/taskdesk/taskdesk/internal/user/repositoryimpl"
	"github.com/taskdesk/taskdesk/pkg/clog"
	"github.com/taskdesk/taskdesk/pkg/panicerr"
	"github.com/taskdesk/taskdesk/pkg/storage"
)

func runSafely(ctx context.Context, name string, fn func(context.Context) error) {
	if err := panicerr.SafeContext(fn)(ctx); err != nil {
		slog.Error("background worker stopped", "name", name, "error", err)
	}
}

func main() {
	env, err := config.LoadEnv()
	if err != nil {
		slog.Error("failed to load env", "error", err)
		os.Exit(1)
	}

	// Setup logger
	level := env.SlogLevel()
	var handler slog.Handler
	if env.Env == "local" {
		handler = clog.NewHTTPTextHandler(os.Stderr, clog.WithLevel(level))
	} else {
		handler = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	}
	slog.SetDefault(slog.New(clog.NewAttributesHandler(handler)))

	// Setup storage
	var store storage.Storage
	var local *storage.LocalStorage
	switch env.StorageEnv.Type {
	case "s3":
		store, err = storage.NewS3Storage(context.Background(), env.StorageEnv.S3Bucket, env.StorageEnv.S3Prefix, env.StorageEnv.S3Region)
		if err != nil {
			slog.Error("failed to create S3 storage", "error", err)
			os.Exit(1)
		}
	default:
		local, err = storage.NewLocalStorage(env.StorageEnv.BaseDir)
		if err != nil {
			slog.Error("failed to create local storage", "error", err)
			os.Exit(1)
		}
		store = local
	}

	// Setup event bus
	bus := eventbus.New()

	// Setup repositories with the first-run dataset
	now := time.Now()
	userRepo := userrepo.NewYAMLRepository(store, seed.DefaultUsers())
	taskRepo := taskrepo.NewYAMLRepository(store, seed.DefaultTasks(now))
	notificationRepo := notificationrepo.NewYAMLRepository(store, seed.DefaultNotifications(now))
	pushSubRepo := pushsubrepo.NewYAMLRepository(store)

	// Setup services
	userService := user.NewService(userRepo)
	notificationService := notification.NewService(notificationRepo)
	notificationFactory := notification.NewFactory()
	engine := task.NewEngine(taskRepo, notificationRepo, notificationFactory, bus)

	// Setup servers
	userServer := user.NewServer(userService)
	taskServer := task.NewServer(engine, taskRepo, userService)
	notificationServer := notification.NewServer(notificationService)
	eventServer := event.NewServer(bus)

	// Setup push notification
	vapidEnv := config.VAPIDEnvFromEnv(env)
	pushSender := pushnotification.NewSender(vapidEnv, pushSubRepo)
	pushNotificationServer := pushnotification.NewServer(vapidEnv, pushSubRepo, pushSender)
	pushDispatcher := pushnotification.NewDispatcher(bus, notificationRepo, pushSender)

	srv := server.NewServer(
		env,
		userServer,
		taskServer,
		notificationServer,
		eventServer,
		pushNotificationServer,
	)

	// Graceful shutdown
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer cancel()

	go runSafely(ctx, "push dispatcher", func(ctx context.Context) error {
		pushDispatcher.Start(ctx)
		return nil
	})

	// Local storage is shared with the CLI; file watch turns external edits
	// into change events for connected stream clients.
	if local != nil {
		changes, err := local.Watch(ctx)
		if err != nil {
			slog.Warn("failed to watch storage, external edits will not be streamed", "error", err)
		} else {
			go runSafely(ctx, "storage watcher", func(ctx context.Context) error {
				for path := range changes {
					bus.PublishNew(eventbus.TypeDataChanged, path, "", nil)
				}
				return nil
			})
		}
	}

	go func() {
		if err := srv.ListenAndServe(ctx); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			cancel()
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down server")

	// Give active connections time to finish after stream contexts are cancelled.
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown error", "error", err)
	}
}
