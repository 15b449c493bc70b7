package consts

// 帖子分类，闭集。越界值在持久层被拒绝
const (
	CategoryAgriculture   = "Agriculture"
	CategoryFitness       = "Fitness or Bodybuilding"
	CategoryWebDev        = "Web Development"
	CategoryCrypto        = "Bitcoin or Cryptocurrency"
	CategoryWeather       = "Weather"
	CategoryInvestment    = "Investment"
	CategoryEducation     = "Education"
	CategoryUncategorized = "Uncategorized"
)

// Categories 所有合法分类
var Categories = []string{
	CategoryAgriculture,
	CategoryFitness,
	CategoryWebDev,
	CategoryCrypto,
	CategoryWeather,
	CategoryInvestment,
	CategoryEducation,
	CategoryUncategorized,
}

// IsValidCategory 判断分类是否在闭集内
func IsValidCategory(category string) bool {
	for _, c := range Categories {
		if c == category {
			return true
		}
	}
	return false
}

const (
	// MinPasswordLength 注册密码最短长度
	MinPasswordLength = 6
	// MinDescriptionLength 编辑帖子时正文最短长度
	MinDescriptionLength = 12
)
