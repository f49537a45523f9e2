package xjobconf_test

import (
	"fmt"
	"time"

	"github.com/omeyang/schedkit/pkg/config/xjobconf"
	"github.com/omeyang/schedkit/pkg/lifecycle/xtoken"
)

// ExampleParse 演示从内存数据解析任务表。
func ExampleParse() {
	data := []byte(`
jobs:
  - name: heartbeat
    every: 30s
  - name: cleanup
    spec: "@every 1h"
    with_cancel: true
`)

	file, err := xjobconf.Parse(data, xjobconf.FormatYAML)
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, job := range file.Jobs {
		fmt.Println(job.Name)
	}
	// Output:
	// heartbeat
	// cleanup
}

// ExampleBuild 演示把任务表绑定到执行函数。
func ExampleBuild() {
	file, _ := xjobconf.Parse([]byte(`
jobs:
  - name: heartbeat
    every: 30s
  - name: cleanup
    spec: "@every 1h"
    with_cancel: true
`), xjobconf.FormatYAML)

	jobs, err := xjobconf.Build(file, xjobconf.Actions{
		Run: map[string]func(){
			"heartbeat": func() { /* 发送心跳 */ },
		},
		RunCancel: map[string]func(*xtoken.Token){
			"cleanup": func(token *xtoken.Token) { /* 观察 token 执行清理 */ },
		},
	})
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println(len(jobs), jobs[0].Period() == 30*time.Second)
	// Output: 2 true
}
