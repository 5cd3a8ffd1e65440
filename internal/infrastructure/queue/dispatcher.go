package queue

import (
	"context"
	"hash/fnv"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/fleetedge/telematics-core/internal/api/metrics"
	"github.com/fleetedge/telematics-core/internal/core/ports"
)

const (
	defaultWorkers = 8
	channelBuffer  = 256
)

// Dispatcher routes geofence events to a fixed set of workers using
// consistent hashing on the driver id. Events for one driver are therefore
// processed serially (the signal-loss tracker and the open-detention
// invariant are not safe under concurrent same-driver processing), while
// cross-driver events flow in parallel.
type Dispatcher struct {
	workers   []chan ports.GeofenceEventInput
	processor ports.EventProcessor
	log       zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, processor ports.EventProcessor, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers:   make([]chan ports.GeofenceEventInput, numWorkers),
		processor: processor,
		log:       log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan ports.GeofenceEventInput, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Enqueue sends an event to the worker responsible for its driver.
// The call is non-blocking up to channelBuffer capacity.
func (d *Dispatcher) Enqueue(event ports.GeofenceEventInput) {
	idx := d.shardIndex(event.DriverID)
	d.workers[idx] <- event
	metrics.EventsQueueDepth.WithLabelValues(strconv.Itoa(idx)).Set(float64(len(d.workers[idx])))
}

// EnqueueBatch enqueues multiple events preserving per-driver ordering.
func (d *Dispatcher) EnqueueBatch(events []ports.GeofenceEventInput) {
	for _, e := range events {
		d.Enqueue(e)
	}
}

// shardIndex maps a driver id deterministically to a worker index.
func (d *Dispatcher) shardIndex(driverID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(driverID))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan ports.GeofenceEventInput) {
	workerID := strconv.Itoa(id)
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-ch:
			if !ok {
				return
			}
			metrics.EventsQueueDepth.WithLabelValues(workerID).Set(float64(len(ch)))

			start := time.Now()
			if _, err := d.processor.Process(ctx, event); err != nil {
				metrics.EventProcessingDuration.WithLabelValues("error").Observe(time.Since(start).Seconds())
				d.log.Error().Err(err).
					Str("driver_id", event.DriverID).
					Str("geofence_id", event.GeofenceID).
					Int("worker_id", id).
					Msg("geofence event processing failed")
				continue
			}
			metrics.EventProcessingDuration.WithLabelValues(string(event.Action)).Observe(time.Since(start).Seconds())
		}
	}
}
