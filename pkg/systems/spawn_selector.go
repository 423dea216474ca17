package systems

import "github.com/decker502/deadshelf/pkg/utils"

// SpawnVisibilityDotThreshold 视野排除阈值
// 候选点方向与玩家朝向点积 >= 该值时视为在玩家视野内（约 ±60° 前方锥体）
const SpawnVisibilityDotThreshold = 0.5

// Rand 可替换的随机源，测试中注入带种子的 *rand.Rand
type Rand interface {
	Intn(n int) int
}

// SelectSpawnPoint 从玩家视野外的候选点中均匀随机选择一个
//
// 参数:
//   - playerPos: 玩家当前位置
//   - forward: 玩家朝向（内部会归一化）
//   - candidates: 只读的候选刷怪点
//   - rng: 随机源
//
// 返回:
//   - utils.Vec3: 选中的刷怪点
//   - bool: 没有合法候选点时返回 false，调用方应跳过本次刷怪
func SelectSpawnPoint(playerPos, forward utils.Vec3, candidates []utils.Vec3, rng Rand) (utils.Vec3, bool) {
	fwd := forward.Normalize()

	valid := make([]utils.Vec3, 0, len(candidates))
	for _, c := range candidates {
		dir := c.Sub(playerPos).Normalize()
		if dir.Dot(fwd) < SpawnVisibilityDotThreshold {
			valid = append(valid, c)
		}
	}

	if len(valid) == 0 {
		return utils.Vec3{}, false
	}
	return valid[rng.Intn(len(valid))], true
}
