package xjobconf

// Format 任务表文件格式。
type Format string

// 支持的任务表格式。
const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// JobConfig 任务表中的单个任务条目。
type JobConfig struct {
	// Name 任务名，必填且在表内唯一。
	Name string `koanf:"name"`

	// Every 固定执行间隔，Go 时长格式（如 "30s"、"5m"）。
	// 与 Spec 二选一；都未设置时使用默认周期。
	Every string `koanf:"every"`

	// Spec cron 表达式（支持可选秒字段与 @every 描述符）。
	// 设置后优先于 Every。
	Spec string `koanf:"spec"`

	// Truncate 是否对齐到绝对时间的整周期边界。
	// 未设置时沿用默认值（开启）。
	Truncate *bool `koanf:"truncate"`

	// WithCancel 任务是否感知取消。为 true 时构建期在
	// [Actions.RunCancel] 中查找执行函数。
	WithCancel bool `koanf:"with_cancel"`

	// Disabled 为 true 时跳过该任务，不参与构建。
	Disabled bool `koanf:"disabled"`

	// Command 外部命令行（程序与参数）。由 cmd/schedrun 这类
	// 调用方解释执行，库本身不直接运行。
	Command []string `koanf:"command"`
}

// File 解析后的任务表。
type File struct {
	Jobs []JobConfig `koanf:"jobs"`
}

// Job 按名称查找任务条目，不存在时返回 nil。
func (f *File) Job(name string) *JobConfig {
	for i := range f.Jobs {
		if f.Jobs[i].Name == name {
			return &f.Jobs[i]
		}
	}
	return nil
}
