package web_test

import (
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"bullion/internal/board"
	"bullion/internal/conversion"
	"bullion/internal/interaction/web"
	"bullion/internal/model"
	"bullion/internal/render"
	"bullion/internal/repository/snapshots"
	"bullion/locales"
	webMock "bullion/mocks/web"
	"bullion/testing/suite"
)

func newBoard() *board.Board {
	return board.New(
		board.Region{ID: model.RegionPrimary, Title: "goldprice.org"},
		board.Region{ID: model.RegionSecondary, Title: "gold-api.com"},
	)
}

func newReport() *model.Report {
	return &model.Report{
		Source: "goldprice.org",
		Gold: model.SpotQuote{
			Metal:             model.Gold,
			PricePerTroyOunce: 1990.6225152,
			ChangeAbsolute:    suite.Float(12.5),
			ChangePercent:     suite.Float(0.63),
		},
		Silver:   model.SpotQuote{Metal: model.Silver, PricePerTroyOunce: 25},
		Prices:   conversion.Compute(conversion.Inputs{OunceUSD: 1990.6225152, PegRate: conversion.USDToAED, FXRate: 49}),
		FXSource: model.FXDerived,
	}
}

func newServer(t *testing.T, b *board.Board, cycle web.CycleRunner) *httptest.Server {
	return newArchiveServer(t, b, cycle, nil)
}

func newArchiveServer(t *testing.T, b *board.Board, cycle web.CycleRunner, archive web.Archive) *httptest.Server {
	_, st := suite.New(t)

	bundle, err := locales.GetBundle(st.BaseDir)
	require.NoError(t, err)

	interaction := web.NewInteraction(st.Logger, ":0", 3*time.Second, render.New(st.Logger, bundle), b, cycle)
	if archive != nil {
		interaction.WithArchive(archive)
	}

	srv := httptest.NewServer(interaction.Handler())
	t.Cleanup(srv.Close)
	return srv
}

func noRedirect(*http.Request, []*http.Request) error {
	return http.ErrUseLastResponse
}

func Test_Index(t *testing.T) {
	t.Run("should show an error region next to a populated one", func(t *testing.T) {
		b := newBoard()
		b.Publish(model.RegionPrimary, newReport())
		b.Fail(model.RegionSecondary, errors.New("gold spot unavailable"))

		srv := newServer(t, b, webMock.NewMockCycleRunner(t))

		resp, err := http.Get(srv.URL + "/")
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		doc, err := goquery.NewDocumentFromReader(resp.Body)
		require.NoError(t, err)

		// Then: The primary card shows prices
		primary := doc.Find("#region-primary")
		require.True(t, primary.HasClass("status-ok"))
		require.Contains(t, primary.Text(), "EGP 3,136.00")
		require.Equal(t, "+$12.50 (0.63%)", primary.Find("td.extra.positive").First().Text())

		// Then: The secondary card is in the error state
		secondary := doc.Find("#region-secondary")
		require.True(t, secondary.HasClass("status-error"))
		require.Equal(t, "Error", secondary.Find(".message").Text())
		require.Zero(t, secondary.Find("table").Length())

		// Then: The page refreshes itself and the button is enabled
		content, _ := doc.Find(`meta[http-equiv="refresh"]`).Attr("content")
		require.Equal(t, "3", content)
		_, disabled := doc.Find("#refresh").Attr("disabled")
		require.False(t, disabled)
	})

	t.Run("should disable the refresh button while busy", func(t *testing.T) {
		b := newBoard()
		b.SetBusy(true)

		srv := newServer(t, b, webMock.NewMockCycleRunner(t))

		resp, err := http.Get(srv.URL + "/")
		require.NoError(t, err)
		defer resp.Body.Close()

		doc, err := goquery.NewDocumentFromReader(resp.Body)
		require.NoError(t, err)

		_, disabled := doc.Find("#refresh").Attr("disabled")
		require.True(t, disabled)
		require.Equal(t, "Loading...", doc.Find("#region-primary .message").Text())
	})

	t.Run("should render arabic right to left", func(t *testing.T) {
		srv := newServer(t, newBoard(), webMock.NewMockCycleRunner(t))

		req, err := http.NewRequest(http.MethodGet, srv.URL+"/", nil)
		require.NoError(t, err)
		req.Header.Set("Accept-Language", "ar-EG,ar;q=0.9,en;q=0.5")

		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		doc, err := goquery.NewDocumentFromReader(resp.Body)
		require.NoError(t, err)

		require.Equal(t, "rtl", doc.Find("html").AttrOr("dir", ""))
		require.Equal(t, "أسعار الذهب والفضة", doc.Find("h1").Text())
	})
}

func Test_Refresh(t *testing.T) {
	client := &http.Client{CheckRedirect: noRedirect}

	t.Run("should run a cycle and redirect back", func(t *testing.T) {
		cycle := webMock.NewMockCycleRunner(t)
		cycle.EXPECT().RunCycle(mock.Anything).Return(true).Once()

		srv := newServer(t, newBoard(), cycle)

		resp, err := client.Post(srv.URL+"/refresh", "application/x-www-form-urlencoded", nil)
		require.NoError(t, err)
		defer resp.Body.Close()

		require.Equal(t, http.StatusSeeOther, resp.StatusCode)
		require.Equal(t, "/", resp.Header.Get("Location"))
	})

	t.Run("should answer conflict while a cycle is in flight", func(t *testing.T) {
		cycle := webMock.NewMockCycleRunner(t)
		cycle.EXPECT().RunCycle(mock.Anything).Return(false).Once()

		srv := newServer(t, newBoard(), cycle)

		resp, err := client.Post(srv.URL+"/refresh", "application/x-www-form-urlencoded", nil)
		require.NoError(t, err)
		defer resp.Body.Close()

		require.Equal(t, http.StatusConflict, resp.StatusCode)
	})
}

func Test_API(t *testing.T) {
	t.Run("should return the snapshot as JSON with CORS", func(t *testing.T) {
		b := newBoard()
		b.Publish(model.RegionPrimary, newReport())

		srv := newServer(t, b, webMock.NewMockCycleRunner(t))

		req, err := http.NewRequest(http.MethodGet, srv.URL+"/api/prices", nil)
		require.NoError(t, err)
		req.Header.Set("Origin", "http://example.com")

		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		require.Equal(t, http.StatusOK, resp.StatusCode)
		require.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))

		var body web.PricesResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		require.False(t, body.Busy)
		require.Len(t, body.Regions, 2)
		require.Equal(t, board.StatusOK, body.Regions[0].Status)
		require.Equal(t, 1990.6225152, body.Regions[0].Report.Gold.PricePerTroyOunce)
		require.Equal(t, board.StatusLoading, body.Cards[1].Status)
	})

	t.Run("should report health", func(t *testing.T) {
		srv := newServer(t, newBoard(), webMock.NewMockCycleRunner(t))

		resp, err := http.Get(srv.URL + "/health")
		require.NoError(t, err)
		defer resp.Body.Close()

		require.Equal(t, http.StatusOK, resp.StatusCode)
	})
}

func Test_Archive(t *testing.T) {
	t.Run("should return the latest archived snapshot", func(t *testing.T) {
		archive := webMock.NewMockArchive(t)
		archive.EXPECT().Latest(mock.Anything, "goldprice.org").Return(&model.PriceSnapshot{Source: "goldprice.org", GoldOunceUSD: 2000}, nil).Once()

		srv := newArchiveServer(t, newBoard(), webMock.NewMockCycleRunner(t), archive)

		resp, err := http.Get(srv.URL + "/api/archive/goldprice.org")
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var snapshot model.PriceSnapshot
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&snapshot))
		require.Equal(t, 2000.0, snapshot.GoldOunceUSD)
	})

	t.Run("should answer not found for an empty source", func(t *testing.T) {
		archive := webMock.NewMockArchive(t)
		archive.EXPECT().Latest(mock.Anything, "gold-api.com").Return(nil, snapshots.ErrNotFound).Once()

		srv := newArchiveServer(t, newBoard(), webMock.NewMockCycleRunner(t), archive)

		resp, err := http.Get(srv.URL + "/api/archive/gold-api.com")
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("should answer not found when the archive is disabled", func(t *testing.T) {
		srv := newServer(t, newBoard(), webMock.NewMockCycleRunner(t))

		resp, err := http.Get(srv.URL + "/api/archive/goldprice.org")
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func Test_WebSocket(t *testing.T) {
	t.Run("should push the initial snapshot and every change", func(t *testing.T) {
		b := newBoard()
		srv := newServer(t, b, webMock.NewMockCycleRunner(t))

		conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http")+"/ws", nil)
		require.NoError(t, err)
		defer conn.Close()

		require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))

		// Then: The initial snapshot arrives on connect
		var initial web.PricesResponse
		require.NoError(t, conn.ReadJSON(&initial))
		require.Equal(t, board.StatusLoading, initial.Regions[0].Status)

		// When: A region is published
		b.Publish(model.RegionPrimary, newReport())

		var update web.PricesResponse
		require.NoError(t, conn.ReadJSON(&update))
		require.Equal(t, board.StatusOK, update.Regions[0].Status)
		require.NotEmpty(t, update.Cards[0].Lines)
	})
}

func Test_NonFinitePrice(t *testing.T) {
	t.Run("should keep serving when a report carries a non-finite price", func(t *testing.T) {
		b := newBoard()
		srv := newServer(t, b, webMock.NewMockCycleRunner(t))

		conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http")+"/ws", nil)
		require.NoError(t, err)
		defer conn.Close()

		require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))

		var initial web.PricesResponse
		require.NoError(t, conn.ReadJSON(&initial))

		// When: A report with a NaN gold price reaches the board
		report := newReport()
		report.Gold.PricePerTroyOunce = math.NaN()
		require.NotPanics(t, func() { b.Publish(model.RegionPrimary, report) })

		// Then: The page still renders the card
		resp, err := http.Get(srv.URL + "/")
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		doc, err := goquery.NewDocumentFromReader(resp.Body)
		require.NoError(t, err)
		require.Equal(t, "$n/a", doc.Find("#region-primary td.value").First().Text())
	})
}
