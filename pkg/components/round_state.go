package components

// RoundStateComponent 回合状态（挂在回合实体上，HUD 和结算读取）
// 击杀数不统计模板实体
type RoundStateComponent struct {
	Running        bool
	StartedAt      float64 // 回合开始时的时钟
	SpawnInterval  float64 // 刷怪间隔（秒）
	Kills          int     // 击杀数（>= 0）
	SpawnAttempts  int     // 刷怪尝试次数
	SpawnsSkipped  int     // 没有合法刷怪点而跳过的次数
	EnemiesSpawned int     // 成功刷出的敌人数
}
