package handler

import "stockpulse/internal/model"

type StocksResponse struct {
	Stocks     []model.Stock `json:"stocks"`
	LastUpdate string        `json:"last_update"`
	Count      int           `json:"count"`
}

type UpdateResponse struct {
	Status    string `json:"status"`
	Message   string `json:"message"`
	Count     int    `json:"count,omitempty"`
	Timestamp string `json:"timestamp,omitempty"`
}

type StatusResponse struct {
	Status      string `json:"status"`
	StocksCount int    `json:"stocks_count"`
	LastUpdate  string `json:"last_update"`
	ServerTime  string `json:"server_time"`
}
