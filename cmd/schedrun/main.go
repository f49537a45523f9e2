// schedrun 按任务表周期执行外部命令。
//
// 用法:
//
//	schedrun [全局选项] <命令>
//
// 全局选项:
//
//	-c, --config       任务表路径 (默认: jobs.yaml)
//	-l, --log-level    日志级别 (debug/info/warn/error, 默认: info)
//	    --max-concurrent  同时执行的任务数上限 (0 表示不限制)
//	    --stats        退出时向标准输出打印执行统计 (JSON)
//
// 命令:
//
//	run            加载任务表并运行调度器，收到终止信号后优雅排空
//	check          校验任务表，不运行任何任务
//
// 任务表示例 (jobs.yaml):
//
//	jobs:
//	  - name: heartbeat
//	    every: 30s
//	    command: ["curl", "-fsS", "http://localhost:8080/healthz"]
//	  - name: backup
//	    spec: "0 0 3 * * *"
//	    with_cancel: true
//	    command: ["/usr/local/bin/backup.sh"]
//
// with_cancel 为 true 的任务通过 context 绑定命令进程：
// 调度器关闭时在途命令收到终止信号，而非被等待到自然结束。
//
// 退出码:
//
//	0: 正常退出（run: 信号触发的优雅关闭; check: 任务表合法）
//	1: 任务表加载/校验失败或调度器启动失败
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"os/exec"

	"github.com/urfave/cli/v3"

	"github.com/omeyang/schedkit/pkg/config/xjobconf"
	"github.com/omeyang/schedkit/pkg/lifecycle/xsched"
	"github.com/omeyang/schedkit/pkg/lifecycle/xtoken"
)

// 版本信息（可通过 -ldflags 注入）。
var (
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	app := createApp()
	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "错误: %v\n", err)
		return 1
	}
	return 0
}

// createApp 创建 CLI 应用。
func createApp() *cli.Command {
	return &cli.Command{
		Name:    "schedrun",
		Usage:   "按任务表周期执行外部命令",
		Version: fmt.Sprintf("%s (commit: %s)", Version, GitCommit),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "任务表路径",
				Value:   "jobs.yaml",
			},
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "日志级别 (debug/info/warn/error)",
				Value:   "info",
			},
			&cli.Int64Flag{
				Name:  "max-concurrent",
				Usage: "同时执行的任务数上限 (0 表示不限制)",
			},
			&cli.BoolFlag{
				Name:  "stats",
				Usage: "退出时打印执行统计 (JSON)",
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "run",
				Usage:  "加载任务表并运行调度器",
				Action: runAction,
			},
			{
				Name:   "check",
				Usage:  "校验任务表，不运行任何任务",
				Action: checkAction,
			},
		},
		DefaultCommand: "run",
	}
}

func runAction(_ context.Context, cmd *cli.Command) error {
	logger := newLogger(cmd.String("log-level"))

	file, err := xjobconf.Load(cmd.String("config"))
	if err != nil {
		return err
	}

	actions, err := buildActions(logger, file)
	if err != nil {
		return err
	}
	jobs, err := xjobconf.Build(file, actions)
	if err != nil {
		return err
	}

	s := xsched.New(
		xsched.WithLogger(logger),
		xsched.WithSchedulerName("schedrun"),
		xsched.WithMaxConcurrent(cmd.Int64("max-concurrent")),
	)
	for _, job := range jobs {
		s.Spawn(job)
	}

	logger.Info("scheduler started",
		slog.String("config", cmd.String("config")),
		slog.Int("jobs", len(jobs)),
	)
	stats := s.Stats()
	s.Wait()

	if cmd.Bool("stats") {
		out, err := json.MarshalIndent(stats.Snapshot(), "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
	}
	return nil
}

func checkAction(_ context.Context, cmd *cli.Command) error {
	path := cmd.String("config")
	file, err := xjobconf.Load(path)
	if err != nil {
		return err
	}
	if _, err := buildActions(newLogger("error"), file); err != nil {
		return err
	}
	fmt.Printf("ok: %s (%d jobs)\n", path, len(file.Jobs))
	return nil
}

// buildActions 把任务表中的命令行条目转换为执行函数。
// 未禁用的任务必须声明 command，否则无事可做。
func buildActions(logger *slog.Logger, file *xjobconf.File) (xjobconf.Actions, error) {
	actions := xjobconf.Actions{
		Run:       make(map[string]func()),
		RunCancel: make(map[string]func(*xtoken.Token)),
	}

	for _, job := range file.Jobs {
		if job.Disabled {
			continue
		}
		if len(job.Command) == 0 {
			return actions, fmt.Errorf("schedrun: job %q has no command", job.Name)
		}

		if job.WithCancel {
			actions.RunCancel[job.Name] = cancelCommandRunner(logger, job.Name, job.Command)
		} else {
			actions.Run[job.Name] = commandRunner(logger, job.Name, job.Command)
		}
	}
	return actions, nil
}

// commandRunner 构造一次性执行外部命令的函数。
// 命令失败只记日志，不中断任务循环。
func commandRunner(logger *slog.Logger, name string, argv []string) func() {
	return func() {
		cmd := exec.Command(argv[0], argv[1:]...)
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
		if err := cmd.Run(); err != nil {
			logger.Error("command failed",
				slog.String("job", name),
				slog.Any("error", err),
			)
		}
	}
}

// cancelCommandRunner 构造感知取消的命令执行函数。
// 命令进程通过 context 绑定子令牌，调度器关闭时在途命令被终止。
func cancelCommandRunner(logger *slog.Logger, name string, argv []string) func(*xtoken.Token) {
	return func(token *xtoken.Token) {
		cmd := exec.CommandContext(token.Context(), argv[0], argv[1:]...)
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
		if err := cmd.Run(); err != nil {
			if token.IsCancelled() {
				logger.Info("command terminated by shutdown",
					slog.String("job", name),
				)
				return
			}
			logger.Error("command failed",
				slog.String("job", name),
				slog.Any("error", err),
			)
		}
	}
}

// newLogger 按级别创建文本格式的 slog 记录器，输出到标准错误。
func newLogger(level string) *slog.Logger {
	var lv slog.Level
	switch level {
	case "debug":
		lv = slog.LevelDebug
	case "warn":
		lv = slog.LevelWarn
	case "error":
		lv = slog.LevelError
	default:
		lv = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lv}))
}
