package game

import (
	"fmt"
	"log"
)

// RoundSummary 一局结束时的结算数据
type RoundSummary struct {
	SessionID    string  `yaml:"sessionId"`
	Kills        int     `yaml:"kills"`
	BooksShelved int     `yaml:"booksShelved"`
	Points       int     `yaml:"points"`
	Duration     float64 `yaml:"duration"` // 秒
}

// String 结算界面文本
func (s RoundSummary) String() string {
	return fmt.Sprintf("Books Shelved: %d\nZombies Killed: %d\nSurvived: %.0fs",
		s.BooksShelved, s.Kills, s.Duration)
}

// SummaryReporter 接收结算数据
type SummaryReporter interface {
	ReportRound(summary RoundSummary)
}

// LogSummaryReporter 把结算写入日志
type LogSummaryReporter struct{}

// ReportRound 输出结算
func (LogSummaryReporter) ReportRound(summary RoundSummary) {
	log.Printf("[RoundSummary] session=%s kills=%d books=%d points=%d duration=%.1fs",
		summary.SessionID, summary.Kills, summary.BooksShelved, summary.Points, summary.Duration)
}
