// File: internal/audit/recorder.go
package audit

import (
	"context"
	"log"
	"sync"
	"time"

	"shoplite/internal/database"
	"shoplite/internal/store"
)

// recordLoginEvent 可於測試覆寫
var recordLoginEvent = store.RecordLoginEvent

const writeTimeout = 5 * time.Second

// Event 一次登入嘗試
type Event struct {
	Email     string
	Succeeded bool
}

// Recorder 以固定數量的 worker 將登入事件非同步寫入資料庫
// 佇列滿載時丟棄事件並記錄日誌，稽核不可阻塞登入流程
type Recorder struct {
	db     database.DB
	events chan Event
	wg     sync.WaitGroup
	once   sync.Once
}

// NewRecorder 啟動 workers 個寫入 goroutine
// workers <= 0 預設 1，queueSize <= 0 預設 64
func NewRecorder(db database.DB, workers, queueSize int) *Recorder {
	if workers <= 0 {
		workers = 1
	}
	if queueSize <= 0 {
		queueSize = 64
	}
	r := &Recorder{
		db:     db,
		events: make(chan Event, queueSize),
	}
	r.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer r.wg.Done()
			for ev := range r.events {
				r.write(ev)
			}
		}()
	}
	return r
}

func (r *Recorder) write(ev Event) {
	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()
	if err := recordLoginEvent(ctx, r.db, ev.Email, ev.Succeeded); err != nil {
		log.Printf("audit: 寫入登入事件失敗: %v", err)
	}
}

// Record 將事件排入佇列；佇列滿時丟棄並回傳 false
func (r *Recorder) Record(ev Event) bool {
	select {
	case r.events <- ev:
		return true
	default:
		log.Printf("audit: 佇列滿載，丟棄事件 email=%s", ev.Email)
		return false
	}
}

// Close 關閉佇列並等待所有 worker 寫完
func (r *Recorder) Close() {
	r.once.Do(func() {
		close(r.events)
	})
	r.wg.Wait()
}
