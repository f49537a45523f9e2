package xjobconf

import (
	"fmt"
	"time"

	"github.com/omeyang/schedkit/pkg/lifecycle/xsched"
	"github.com/omeyang/schedkit/pkg/lifecycle/xtoken"
)

// Actions 按任务名注册的执行函数。
//
// with_cancel 为 false 的任务在 Run 中查找，为 true 的任务在
// RunCancel 中查找；查找失败时 Build 返回 [ErrUnknownAction]。
type Actions struct {
	Run       map[string]func()
	RunCancel map[string]func(token *xtoken.Token)
}

// Build 把任务表与注册的执行函数组合为可 Spawn 的任务列表。
//
// 禁用的条目被跳过。返回的顺序与任务表中的声明顺序一致。
func Build(file *File, actions Actions) ([]xsched.Job, error) {
	if file == nil {
		return nil, nil
	}

	jobs := make([]xsched.Job, 0, len(file.Jobs))
	for _, cfg := range file.Jobs {
		if cfg.Disabled {
			continue
		}
		job, err := buildJob(cfg, actions)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, job)
	}
	return jobs, nil
}

func buildJob(cfg JobConfig, actions Actions) (xsched.Job, error) {
	opts := []xsched.JobOption{xsched.WithName(cfg.Name)}

	switch {
	case cfg.Spec != "":
		opts = append(opts, xsched.WithSpec(cfg.Spec))
	case cfg.Every != "":
		// validate 已保证可解析且为正
		d, err := time.ParseDuration(cfg.Every)
		if err != nil {
			return nil, fmt.Errorf("%w: job %q: %w", ErrInvalidEvery, cfg.Name, err)
		}
		opts = append(opts, xsched.WithPeriod(d))
	}
	if cfg.Truncate != nil {
		opts = append(opts, xsched.WithTruncate(*cfg.Truncate))
	}

	if cfg.WithCancel {
		fn, ok := actions.RunCancel[cfg.Name]
		if !ok {
			return nil, fmt.Errorf("%w: %q (with_cancel)", ErrUnknownAction, cfg.Name)
		}
		opts = append(opts, xsched.WithRunCancel(fn))
	} else {
		fn, ok := actions.Run[cfg.Name]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownAction, cfg.Name)
		}
		opts = append(opts, xsched.WithRun(fn))
	}

	job, err := xsched.NewJob(opts...)
	if err != nil {
		return nil, fmt.Errorf("xjobconf: job %q: %w", cfg.Name, err)
	}
	return job, nil
}
