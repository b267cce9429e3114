package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cmlabs-hris/payroll-backend-go/internal/config"
	"github.com/cmlabs-hris/payroll-backend-go/internal/domain/payroll"
	appHTTP "github.com/cmlabs-hris/payroll-backend-go/internal/handler/http"
	"github.com/cmlabs-hris/payroll-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/payroll-backend-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/payroll-backend-go/internal/repository/postgresql"
	serviceAuth "github.com/cmlabs-hris/payroll-backend-go/internal/service/auth"
	employeeService "github.com/cmlabs-hris/payroll-backend-go/internal/service/employee"
	leaveService "github.com/cmlabs-hris/payroll-backend-go/internal/service/leave"
	payrollService "github.com/cmlabs-hris/payroll-backend-go/internal/service/payroll"
	recordService "github.com/cmlabs-hris/payroll-backend-go/internal/service/record"
	"github.com/go-chi/httplog/v3"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		os.Exit(1)
	}

	logFormat := httplog.SchemaECS.Concise(cfg.App.Env != "production")
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:       cfg.SlogLevel(),
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "payroll-backend"),
		slog.String("env", cfg.App.Env),
	)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL(), database.PoolConfig{
		MaxConns: cfg.Database.MaxConns,
		MinConns: cfg.Database.MinConns,
	})
	if err != nil {
		slog.Error("error connecting to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := database.Migrate(ctx, db); err != nil {
		slog.Error("error applying migrations", "error", err)
		os.Exit(1)
	}

	employeeRepo := postgresql.NewEmployeeRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)
	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)
	recordRepo := postgresql.NewRecordRepository(db)

	onboardingTx := postgresql.NewTransactor(db, cfg.Database.TxTimeout, "onboarding")
	leaveApprovalTx := postgresql.NewTransactor(db, cfg.Database.TxTimeout, "leave_approval")

	calculator := payroll.NewCalculator(payroll.DefaultConfig())
	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	authSvc := serviceAuth.NewAuthService(serviceAuth.AdminCredentials{
		Username: cfg.Auth.AdminUsername,
		Password: cfg.Auth.AdminPassword,
	}, employeeRepo, JWTService)
	employeeSvc := employeeService.NewEmployeeService(onboardingTx, employeeRepo, payrollRepo, recordRepo, calculator)
	leaveSvc := leaveService.NewLeaveService(leaveApprovalTx, leaveRequestRepo, payrollRepo, calculator)
	recordSvc := recordService.NewRecordService(recordRepo)
	payrollSvc := payrollService.NewPayrollService(payrollRepo)

	router := appHTTP.NewRouter(appHTTP.RouterConfig{
		Logger:         logger,
		AllowedOrigins: cfg.App.CORSAllowedOrigins,
		AuthRequired:   cfg.Auth.Required,
	}, JWTService, appHTTP.Handlers{
		Auth:     appHTTP.NewAuthHandler(authSvc),
		Employee: appHTTP.NewEmployeeHandler(employeeSvc),
		Leave:    appHTTP.NewLeaveHandler(leaveSvc, cfg.Auth.DefaultApproverID),
		Record:   appHTTP.NewRecordHandler(recordSvc),
		Payroll:  appHTTP.NewPayrollHandler(payrollSvc),
	})

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Error("server shutdown error", "error", err)
		}
	}()

	slog.Info("server running", "addr", server.Addr, "auth_required", cfg.Auth.Required)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("server error", "error", err)
		os.Exit(1)
	}
}
