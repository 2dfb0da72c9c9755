package server

import (
	"ElectSim/election"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Server exposes the simulator over HTTP.
type Server struct {
	*echo.Echo
	lg *zap.Logger
}

type ErrorRet struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
}

func New(lg *zap.Logger) *Server {
	e := echo.New()
	e.HideBanner = true
	s := &Server{Echo: e, lg: lg}
	e.Use(middleware.Recover())
	e.Use(s.requestLog)

	e.GET("/", hello)
	e.GET("/config/default", defaultConfig)
	e.POST("/simulate", s.simulate)
	return s
}

// Run serves on address until the server is shut down.
func (s *Server) Run(address string) error {
	s.lg.Info("create_http_service", zap.String("address", address))
	err := s.Start(address)
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

func (s *Server) requestLog(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		if err := next(c); err != nil {
			c.Error(err)
		}
		s.lg.Info("http_request",
			zap.String("method", c.Request().Method),
			zap.String("path", c.Path()),
			zap.Int("status", c.Response().Status),
			zap.Duration("elapsed", time.Since(start)))
		return nil
	}
}

func badRequest(c echo.Context, err error) error {
	return c.JSON(http.StatusBadRequest, &ErrorRet{Code: http.StatusBadRequest, Msg: err.Error()})
}

// simulate runs one election. An empty body runs the default preset.
func (s *Server) simulate(c echo.Context) error {
	cfg := election.DefaultConfig()
	if err := c.Bind(&cfg); err != nil {
		return badRequest(c, err)
	}
	e, err := election.New(cfg, election.WithLogger(s.lg))
	if err != nil {
		if errors.Is(err, election.ErrInvalidConfiguration) {
			return badRequest(c, err)
		}
		return errors.Wrap(err, "create election")
	}

	var res election.Result
	if raw := c.QueryParam("seed"); raw != "" {
		seed, perr := strconv.ParseUint(raw, 10, 64)
		if perr != nil {
			return badRequest(c, errors.Wrap(perr, "seed"))
		}
		res, err = e.SimulateSeed(c.Request().Context(), seed)
	} else {
		res, err = e.Simulate(c.Request().Context())
	}
	if err != nil {
		return errors.Wrap(err, "simulate")
	}
	return c.JSON(http.StatusOK, res)
}

func defaultConfig(c echo.Context) error {
	return c.JSON(http.StatusOK, election.DefaultConfig())
}

func hello(c echo.Context) error {
	return c.String(http.StatusOK, "ElectSim")
}
