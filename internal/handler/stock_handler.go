package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"stockpulse/internal/model"
)

// StockStore is the in-memory list the API serves from.
type StockStore interface {
	Replace(stocks []model.Stock)
	Snapshot() ([]model.Stock, time.Time)
}

// SnapshotArchiver persists published lists for the history endpoint.
// Optional; nil disables archiving.
type SnapshotArchiver interface {
	SaveSnapshot(stocks []model.Stock) error
	RecentSnapshots(limit int) ([]model.Snapshot, error)
}

type StockHandler struct {
	store    StockStore
	archiver SnapshotArchiver
}

func NewStockHandler(store StockStore, archiver SnapshotArchiver) *StockHandler {
	return &StockHandler{store: store, archiver: archiver}
}

func (h *StockHandler) GetStocks(c *gin.Context) {
	stocks, lastUpdate := h.store.Snapshot()
	if stocks == nil {
		stocks = []model.Stock{}
	}

	c.JSON(http.StatusOK, StocksResponse{
		Stocks:     stocks,
		LastUpdate: formatUpdate(lastUpdate),
		Count:      len(stocks),
	})
}

func (h *StockHandler) UpdateStocks(c *gin.Context) {
	var stocks []model.Stock
	if err := c.ShouldBindJSON(&stocks); err != nil {
		slog.Error("rejecting malformed stock update", "error", err)
		c.JSON(http.StatusBadRequest, UpdateResponse{
			Status:  "error",
			Message: err.Error(),
		})
		return
	}

	h.store.Replace(stocks)
	now := time.Now()

	slog.Info("stock list replaced", "count", len(stocks))
	for _, s := range stocks {
		if s.Rank > 3 {
			continue
		}
		slog.Info("top gainer", "rank", s.Rank, "name", s.Name, "rate", s.Rate)
	}

	if h.archiver != nil {
		if err := h.archiver.SaveSnapshot(stocks); err != nil {
			slog.Error("snapshot archive failed", "error", err)
		}
	}

	c.JSON(http.StatusOK, UpdateResponse{
		Status:    "success",
		Message:   "stock list updated",
		Count:     len(stocks),
		Timestamp: now.Format(time.RFC3339),
	})
}

func (h *StockHandler) GetStatus(c *gin.Context) {
	stocks, lastUpdate := h.store.Snapshot()

	c.JSON(http.StatusOK, StatusResponse{
		Status:      "running",
		StocksCount: len(stocks),
		LastUpdate:  formatUpdate(lastUpdate),
		ServerTime:  time.Now().Format(time.RFC3339),
	})
}

func (h *StockHandler) GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

func (h *StockHandler) GetHistory(c *gin.Context) {
	if h.archiver == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "History not enabled"})
		return
	}

	snapshots, err := h.archiver.RecentSnapshots(10)
	if err != nil {
		slog.Error("error fetching snapshot history", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"snapshots": snapshots, "count": len(snapshots)})
}

const homePage = `<h1>📊 Stock Monitor API</h1>
<p>Endpoints:</p>
<ul>
  <li>GET /api/stocks - current stock list</li>
  <li>POST /api/update - replace stock list</li>
  <li>GET /api/status - server status</li>
</ul>`

func (h *StockHandler) Home(c *gin.Context) {
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.String(http.StatusOK, homePage)
}

func formatUpdate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339)
}
