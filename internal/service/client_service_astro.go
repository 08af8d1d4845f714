// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/vedicas-garden/internal/adapter"
	"github.com/MKhiriev/vedicas-garden/internal/logger"
	"github.com/MKhiriev/vedicas-garden/models"
)

// Labels of the two participants of a compatibility reading.
const (
	synastrySelfLabel    = "You"
	synastryPartnerLabel = "Partner"
)

type clientAstroService struct {
	state *LocalState
	chart adapter.ChartAPI
	now   func() time.Time

	logger *logger.Logger
}

func NewClientAstroService(state *LocalState, chart adapter.ChartAPI, logger *logger.Logger) ClientAstroService {
	return &clientAstroService{state: state, chart: chart, now: time.Now, logger: logger}
}

func (a *clientAstroService) CalculateBirthChart(ctx context.Context, birth models.BirthData) error {
	params, err := birth.ToChartParams()
	if err != nil {
		return err
	}

	a.state.SetLoading(true)
	defer a.state.SetLoading(false)

	var (
		chart *models.ChartResponse
		dasha *models.DashaResponse
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		chart, err = a.chart.Chart(gctx, params)
		return err
	})
	g.Go(func() (err error) {
		dasha, err = a.chart.Dasha(gctx, params)
		return err
	})
	if err = g.Wait(); err != nil {
		a.state.SetError(err)
		a.logger.Err(err).Msg("chart calculation failed")
		return fmt.Errorf("%w: %w", ErrRemoteFailure, err)
	}

	if err = a.state.SetChart(ctx, birth, chart, dasha); err != nil {
		return err
	}
	a.state.SetError(nil)
	a.logger.Info().Str("date", birth.Date).Msg("birth chart calculated")
	return nil
}

func (a *clientAstroService) CalculateCompatibility(ctx context.Context, partner models.BirthData) (*models.SynastryResponse, error) {
	self, err := a.birthParams()
	if err != nil {
		return nil, err
	}
	if partner.IsZero() {
		return nil, ErrNoPartnerData
	}
	other, err := partner.ToChartParams()
	if err != nil {
		return nil, err
	}

	resp, err := a.chart.Synastry(ctx, models.SynastryRequest{People: []models.SynastryPerson{
		{Label: synastrySelfLabel, BirthData: self},
		{Label: synastryPartnerLabel, BirthData: other},
	}})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRemoteFailure, err)
	}
	if !resp.Success {
		return nil, fmt.Errorf("%w: %s", ErrRemoteFailure, orDefault(resp.Error, "synastry failed"))
	}
	if resp.InterpretationError != "" {
		a.logger.Warn().Str("error", resp.InterpretationError).Msg("synastry returned without interpretation")
	}

	raw, err := json.Marshal(resp)
	if err != nil {
		return nil, fmt.Errorf("error encoding synastry: %w", err)
	}
	if err = a.state.SetSynastry(ctx, partner, raw); err != nil {
		return nil, err
	}
	return resp, nil
}

func (a *clientAstroService) Interpret(ctx context.Context, structured bool) (*models.Interpretation, error) {
	params, err := a.birthParams()
	if err != nil {
		return nil, err
	}

	resp, err := a.chart.Interpret(ctx, params, structured)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRemoteFailure, err)
	}
	if !resp.Success {
		return nil, fmt.Errorf("%w: %s", ErrRemoteFailure, orDefault(resp.Error, "interpretation failed"))
	}
	return resp, nil
}

func (a *clientAstroService) Alignment(ctx context.Context) (*models.AlignmentResponse, error) {
	birth := a.state.Snapshot().Profile.BirthData
	if birth.IsZero() {
		return nil, ErrNoBirthData
	}

	now := a.now()
	resp, err := a.chart.Alignment(ctx, models.ChartParams{
		Year:      now.Year(),
		Month:     int(now.Month()),
		Day:       now.Day(),
		Hour:      now.Hour(),
		Minute:    now.Minute(),
		Latitude:  birth.Latitude,
		Longitude: birth.Longitude,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRemoteFailure, err)
	}
	return resp, nil
}

func (a *clientAstroService) birthParams() (models.ChartParams, error) {
	birth := a.state.Snapshot().Profile.BirthData
	if birth.IsZero() {
		return models.ChartParams{}, ErrNoBirthData
	}
	return birth.ToChartParams()
}
