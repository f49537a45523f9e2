// Package xjobconf 提供任务表配置的加载、校验与构建。
//
// # 概述
//
// 任务表是描述一组周期任务的 YAML 或 JSON 文件：每个条目声明任务名、
// 执行间隔（固定周期或 cron 表达式）、截断开关与取消感知方式。
// 本包把任务表解析为 [File]，再结合调用方注册的执行函数构建出
// xsched.Job 列表。
//
// # 快速开始
//
//	file, err := xjobconf.Load("/etc/app/jobs.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	jobs, err := xjobconf.Build(file, xjobconf.Actions{
//	    Run: map[string]func(){
//	        "cleanup": cleanup,
//	    },
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	s := xsched.New()
//	for _, job := range jobs {
//	    s.Spawn(job)
//	}
//	s.Wait()
//
// # 设计决策
//
//   - 基于 koanf 加载与反序列化，按文件扩展名自动检测 YAML/JSON 格式。
//   - 校验在解析期完成（缺名、重名、非法间隔），构建期只做动作绑定，
//     配置错误尽早暴露。
//   - 文件变更监视基于 fsnotify，监视目录而非文件本身，带防抖，
//     与配置热重载的常见实现一致。
package xjobconf
