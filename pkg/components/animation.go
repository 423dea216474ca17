package components

// 动画参数名
const (
	AnimIsWalking          = "isWalking"
	AnimIsAttacking        = "isAttacking"
	AnimIsDead             = "isDead"
	AnimAttackingAnimation = "attackingAnimation"
)

// AnimationComponent 记录表现层动画意图
// 核心逻辑只写入，不读取视觉状态
type AnimationComponent struct {
	Bools map[string]bool
	Ints  map[string]int
}

// NewAnimationComponent 创建空的动画参数表
func NewAnimationComponent() *AnimationComponent {
	return &AnimationComponent{
		Bools: make(map[string]bool),
		Ints:  make(map[string]int),
	}
}
