package xjobconf

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"

	"github.com/omeyang/schedkit/pkg/lifecycle/xsched"
)

// Load 从文件加载任务表。
// 根据文件扩展名自动检测格式（.yaml/.yml 或 .json）。
func Load(path string) (*File, error) {
	if path == "" {
		return nil, ErrEmptyPath
	}

	format, err := detectFormat(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadFailed, err)
	}

	return Parse(data, format)
}

// Parse 从字节数据解析任务表，需要显式指定格式。
// 解析完成后立即校验：缺名、重名与非法间隔在此处暴露。
func Parse(data []byte, format Format) (*File, error) {
	var parser koanf.Parser
	switch format {
	case FormatYAML:
		parser = yaml.Parser()
	case FormatJSON:
		parser = json.Parser()
	default:
		return nil, ErrUnsupportedFormat
	}

	k := koanf.New(".")
	if len(data) > 0 {
		if err := k.Load(rawbytes.Provider(data), parser); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrParseFailed, err)
		}
	}

	var file File
	if err := k.Unmarshal("", &file); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParseFailed, err)
	}

	if err := validate(&file); err != nil {
		return nil, err
	}
	return &file, nil
}

// detectFormat 根据文件扩展名检测任务表格式。
func detectFormat(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: unknown extension %s", ErrUnsupportedFormat, ext)
	}
}

// validate 校验任务表条目。禁用的任务同样参与校验，
// 避免错误潜伏到重新启用的那一刻。
func validate(file *File) error {
	seen := make(map[string]struct{}, len(file.Jobs))
	for i, job := range file.Jobs {
		if job.Name == "" {
			return fmt.Errorf("%w: entry %d", ErrMissingName, i)
		}
		if _, ok := seen[job.Name]; ok {
			return fmt.Errorf("%w: %q", ErrDuplicateJob, job.Name)
		}
		seen[job.Name] = struct{}{}

		if job.Every != "" {
			d, err := time.ParseDuration(job.Every)
			if err != nil {
				return fmt.Errorf("%w: job %q: %w", ErrInvalidEvery, job.Name, err)
			}
			if d <= 0 {
				return fmt.Errorf("%w: job %q: must be positive", ErrInvalidEvery, job.Name)
			}
		}
		if job.Spec != "" {
			if _, err := xsched.ParseSpec(job.Spec); err != nil {
				return fmt.Errorf("xjobconf: job %q: %w", job.Name, err)
			}
		}
	}
	return nil
}
