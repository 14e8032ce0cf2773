package hook

import "sync"

// asyncWorkers bounds concurrent background posts; the channel buffer
// bounds queued ones. Submission blocks when both are full, so a caller
// spamming async posts is throttled instead of growing goroutines
// without limit.
const (
	asyncWorkers = 4
	asyncBacklog = 64
)

type workerPool struct {
	once  sync.Once
	tasks chan func()
}

var asyncPool = &workerPool{tasks: make(chan func(), asyncBacklog)}

func (p *workerPool) submit(task func()) {
	p.once.Do(func() {
		for i := 0; i < asyncWorkers; i++ {
			go p.worker()
		}
	})
	p.tasks <- task
}

func (p *workerPool) worker() {
	for task := range p.tasks {
		task()
	}
}
