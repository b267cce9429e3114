package http

import (
	"log/slog"

	"github.com/cmlabs-hris/payroll-backend-go/internal/handler/http/middleware"
	"github.com/cmlabs-hris/payroll-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type RouterConfig struct {
	Logger         *slog.Logger
	AllowedOrigins []string

	// AuthRequired puts every mutating route behind an admin token.
	AuthRequired bool
}

type Handlers struct {
	Auth     AuthHandler
	Employee EmployeeHandler
	Leave    LeaveHandler
	Record   RecordHandler
	Payroll  PayrollHandler
}

func NewRouter(cfg RouterConfig, JWTService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Content-Disposition"},
		MaxAge:           300,
	}))

	if cfg.Logger != nil {
		r.Use(httplog.RequestLogger(cfg.Logger, &httplog.Options{
			Level:  slog.LevelInfo,
			Schema: httplog.SchemaECS,
		}))
	}

	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/healthz"))

	r.Handle("/metrics", promhttp.Handler())

	r.Post("/loginAdmin", h.Auth.LoginAdmin)
	r.Post("/loginEmployee", h.Auth.LoginEmployee)

	// Tokens are optional here; a verified token still identifies the approver.
	r.Group(func(r chi.Router) {
		r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
		if cfg.AuthRequired {
			r.Use(middleware.AuthRequired)
		}

		r.Get("/getAllEmployees", h.Employee.ListEmployees)
		r.Get("/checkEmployeeData/{employeeId}", h.Employee.CheckEmployeeData)
		r.Get("/getLeaveRequests", h.Leave.ListRequests)
		r.Get("/getRecord/{table}/{employeeId}", h.Record.GetRecord)
		r.Get("/getAllRecords/{table}/{employeeId}", h.Record.GetAllRecords)
		r.Get("/getPayslip/{employeeId}", h.Payroll.GetPayslip)
		r.Get("/getPayslip/{employeeId}/pdf", h.Payroll.DownloadPayslip)
		r.Get("/getPayrollHistory/{employeeId}", h.Payroll.GetPayrollHistory)
		r.Get("/getPayrollHistory/{employeeId}/export", h.Payroll.ExportPayrollHistory)

		// Mutations
		r.Group(func(r chi.Router) {
			if cfg.AuthRequired {
				r.Use(middleware.AdminOnly)
			}
			r.Post("/addEmployee", h.Employee.AddEmployee)
			r.Post("/approveLeave/{leaveId}", h.Leave.ApproveRequest)
			r.Post("/rejectLeave/{leaveId}", h.Leave.RejectRequest)
			r.Post("/addRecord/{table}", h.Record.AddRecord)
			r.Put("/updateData/{table}", h.Record.UpdateData)
			r.Delete("/deleteData/{table}/{id}", h.Record.DeleteData)
		})
	})

	return r
}
