// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2025 Kaz Walker, Thermoquad

package cmd

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/Thermoquad/daikinir/pkg/config"
	"github.com/Thermoquad/daikinir/pkg/daikin"
	"github.com/Thermoquad/daikinir/pkg/remote"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	serveListen string
	serveOutput string
	serveFormat string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve an HTTP API for changing settings",
	Long: `Run an HTTP API over the settings file. Each accepted change is encoded
and sent to the configured output, then saved.

Endpoints:
  GET /api/settings   current settings
  PUT /api/settings   apply a partial update, e.g. {"temperature": 24}
  GET /api/frame      command frame for the current settings
  GET /api/pulses     pulse text for the current settings

Output goes to --port or --url when given, otherwise to --output.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVarP(&serveListen, "listen", "l", ":8080", "Listen address")
	serveCmd.Flags().StringVarP(&serveOutput, "output", "o", remote.DefaultOutputPath, "Pulse file to write")
	serveCmd.Flags().StringVar(&serveFormat, "format", "", "Output format (text, raw, cbor)")
}

func runServe(cmd *cobra.Command, args []string) error {
	sink, sinkInfo, closeSink, err := openSink(serveOutput, serveFormat)
	if err != nil {
		return err
	}
	defer closeSink()

	r, err := remote.New(configPath, sink)
	if err != nil {
		return err
	}

	if !verbose {
		gin.SetMode(gin.ReleaseMode)
	}

	fmt.Printf("daikinir - HTTP API\n")
	fmt.Printf("Output: %s\n", sinkInfo)
	fmt.Printf("Listening on %s\n\n", serveListen)

	return newRouter(r).Run(serveListen)
}

type errorResponse struct {
	Error string      `json:"error"`
	Kind  string      `json:"kind,omitempty"`
	Field string      `json:"field,omitempty"`
	Value interface{} `json:"value,omitempty"`
}

type frameResponse struct {
	Frame    string `json:"frame"`
	Checksum uint8  `json:"checksum"`
}

type applyResponse struct {
	Settings daikin.Settings `json:"settings"`
	Frame    string          `json:"frame"`
	Symbols  int             `json:"symbols"`
}

func newRouter(r *remote.Remote) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), requestLogger())

	api := router.Group("/api")

	api.GET("/settings", func(c *gin.Context) {
		c.JSON(http.StatusOK, r.Settings())
	})

	api.PUT("/settings", func(c *gin.Context) {
		var o config.Overrides
		if err := c.ShouldBindJSON(&o); err != nil {
			c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}

		res, err := r.Apply(o)
		if err != nil {
			writeApplyError(c, err)
			return
		}

		c.JSON(http.StatusOK, applyResponse{
			Settings: res.Settings,
			Frame:    daikin.FormatFrame(res.Frame),
			Symbols:  len(res.Sequence),
		})
	})

	api.GET("/frame", func(c *gin.Context) {
		res, err := r.Preview(config.Overrides{})
		if err != nil {
			writeApplyError(c, err)
			return
		}
		c.JSON(http.StatusOK, frameResponse{
			Frame:    daikin.FormatFrame(res.Frame),
			Checksum: res.Frame[daikin.ChecksumIndex],
		})
	})

	api.GET("/pulses", func(c *gin.Context) {
		res, err := r.Preview(config.Overrides{})
		if err != nil {
			writeApplyError(c, err)
			return
		}
		c.String(http.StatusOK, res.Sequence.String())
	})

	return router
}

// writeApplyError maps encoding errors to 422 and everything else to 500
func writeApplyError(c *gin.Context, err error) {
	var encErr *daikin.EncodeError
	if errors.As(err, &encErr) {
		c.JSON(http.StatusUnprocessableEntity, errorResponse{
			Error: err.Error(),
			Kind:  encErr.Kind.String(),
			Field: encErr.Field,
			Value: encErr.Value,
		})
		return
	}
	c.JSON(http.StatusInternalServerError, errorResponse{Error: err.Error()})
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		log.WithFields(log.Fields{
			"method": c.Request.Method,
			"path":   c.Request.URL.Path,
			"status": c.Writer.Status(),
		}).Debug("HTTP request")
	}
}
