package domain

import "time"

const (
	StatusCompleted  = "已完成"
	StatusProcessing = "处理中"
	StatusPending    = "待处理"
)

// Record is one revenue-share settlement entry: a payout cycle of an RBO
// project together with its information-flow and capital-flow approvals.
type Record struct {
	ID              string    `json:"id"`
	ProcessDate     string    `json:"processDate"`
	Status          string    `json:"status"`
	System          string    `json:"system"`
	RBOCode         string    `json:"rboCode"`
	InternalRBOCode string    `json:"internalRboCode"`
	ShortName       string    `json:"shortName"`
	TradingAccount  string    `json:"tradingAccount"`
	CycleStartDate  string    `json:"cycleStartDate"`
	CycleEndDate    string    `json:"cycleEndDate"`
	InfoFlowOA      string    `json:"infoFlowOA"`
	InfoFlowDate    string    `json:"infoFlowDate"`
	PayableAmount   float64   `json:"payableAmount"`
	ActualAmount    float64   `json:"actualAmount"`
	CapitalFlowOA   string    `json:"capitalFlowOA"`
	CapitalFlowDate string    `json:"capitalFlowDate"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// RecordFilter narrows a record listing. Empty fields match everything.
type RecordFilter struct {
	Search      string
	Status      string
	System      string
	ProcessDate string
}

type RecordStatistics struct {
	Total      int     `json:"total"`
	Completed  int     `json:"completed"`
	Processing int     `json:"processing"`
	Pending    int     `json:"pending"`
	TotalPaid  float64 `json:"totalPaid"`
}

// RBOInvestment is the catalog entry of one funded project.
type RBOInvestment struct {
	Code       string  `json:"code" yaml:"code"`
	Name       string  `json:"name" yaml:"name"`
	Investment float64 `json:"investment" yaml:"investment"`
	Order      int     `json:"order" yaml:"order"`
}

type RBOProgress struct {
	Code       string  `json:"code"`
	Name       string  `json:"name"`
	Investment float64 `json:"investment"`
	Paid       float64 `json:"paid"`
	Remaining  float64 `json:"remaining"`
	Percentage float64 `json:"percentage"`
	Count      int     `json:"count"`
}

// ProjectionRecord is a saved projection call.
type ProjectionRecord struct {
	ID        string           `json:"id"`
	Input     ProjectionInput  `json:"input"`
	Result    ProjectionResult `json:"result"`
	CreatedAt time.Time        `json:"createdAt"`
}
