package game

import "log"

// PlayerPoints 玩家点数钱包
type PlayerPoints struct {
	points int
}

// NewPlayerPoints 创建钱包
func NewPlayerPoints(initial int) *PlayerPoints {
	if initial < 0 {
		initial = 0
	}
	return &PlayerPoints{points: initial}
}

// AddCurrency 增加点数，非正数忽略
func (p *PlayerPoints) AddCurrency(amount int) {
	if amount <= 0 {
		return
	}
	p.points += amount
}

// SpendCurrency 扣除点数，余额不足时不扣款并返回 false
func (p *PlayerPoints) SpendCurrency(amount int) bool {
	if amount < 0 || p.points < amount {
		return false
	}
	p.points -= amount
	log.Printf("[PlayerPoints] 花费 %d 点，剩余 %d", amount, p.points)
	return true
}

// Points 当前点数
func (p *PlayerPoints) Points() int {
	return p.points
}
