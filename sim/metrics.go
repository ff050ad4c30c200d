// Computes per-process and aggregate performance metrics once every
// process has terminated, and renders the mandated metrics table plus
// an optional percentile breakdown.

package sim

import (
	"fmt"
	"io"

	"github.com/montanaflynn/stats"
)

// ProcessMetrics holds the derived timing figures for one terminated
// process.
type ProcessMetrics struct {
	PID        string
	Turnaround int
	Waiting    int
	Response   int
	CPUTime    int
	IOTime     int
}

// Metrics aggregates per-process figures into run-wide statistics.
type Metrics struct {
	Per []ProcessMetrics

	AvgTurnaround float64
	AvgWaiting    float64
	AvgResponse   float64
	CPUUtil       float64 // percent
	Throughput    float64 // processes per tick

	P50Turnaround, P95Turnaround, P99Turnaround float64
	P50Waiting, P95Waiting, P99Waiting          float64
}

// Collect derives metrics from every process that reached TERMINATED
// with a meaningful finish time, skipping any process that never ran
// during a zero-tick horizon (finish time 0 shares the zero value with
// "never set").
func Collect(processes []*Process, elapsedTicks int) *Metrics {
	m := &Metrics{}
	var totalCPU int
	var turnarounds, waitings []float64

	for _, p := range processes {
		if p.FinishTime == 0 {
			continue
		}
		turnaround := p.FinishTime - p.Arrival
		waiting := turnaround - p.TotalCPUTime - p.TotalIOTime
		if waiting < 0 {
			waiting = 0
		}
		response := p.StartTime - p.Arrival

		pm := ProcessMetrics{
			PID:        p.PID,
			Turnaround: turnaround,
			Waiting:    waiting,
			Response:   response,
			CPUTime:    p.TotalCPUTime,
			IOTime:     p.TotalIOTime,
		}
		m.Per = append(m.Per, pm)

		m.AvgTurnaround += float64(turnaround)
		m.AvgWaiting += float64(waiting)
		m.AvgResponse += float64(response)
		totalCPU += p.TotalCPUTime

		turnarounds = append(turnarounds, float64(turnaround))
		waitings = append(waitings, float64(waiting))
	}

	count := len(m.Per)
	if count == 0 {
		return m
	}

	m.AvgTurnaround /= float64(count)
	m.AvgWaiting /= float64(count)
	m.AvgResponse /= float64(count)
	if elapsedTicks > 0 {
		m.CPUUtil = float64(totalCPU) / float64(elapsedTicks) * 100.0
		m.Throughput = float64(count) / float64(elapsedTicks)
	}

	m.P50Turnaround, _ = stats.Percentile(turnarounds, 50)
	m.P95Turnaround, _ = stats.Percentile(turnarounds, 95)
	m.P99Turnaround, _ = stats.Percentile(turnarounds, 99)
	m.P50Waiting, _ = stats.Percentile(waitings, 50)
	m.P95Waiting, _ = stats.Percentile(waitings, 95)
	m.P99Waiting, _ = stats.Percentile(waitings, 99)

	return m
}

// Print renders the "--- Metrics ---" table with fixed left-justified
// column widths, followed by averages, CPU utilization, and throughput.
func (m *Metrics) Print(w io.Writer) {
	fmt.Fprintln(w, "\n--- Metrics ---")
	fmt.Fprintf(w, "%-10s%-12s%-10s%-10s%-10s%-10s\n", "PID", "Turnaround", "Waiting", "Response", "CPU Time", "IO Time")

	for _, pm := range m.Per {
		fmt.Fprintf(w, "%-10s%-12d%-10d%-10d%-10d%-10d\n",
			pm.PID, pm.Turnaround, pm.Waiting, pm.Response, pm.CPUTime, pm.IOTime)
	}

	if len(m.Per) == 0 {
		return
	}

	fmt.Fprintln(w, "\nAverages:")
	fmt.Fprintf(w, "Turnaround: %g\n", m.AvgTurnaround)
	fmt.Fprintf(w, "Waiting:    %g\n", m.AvgWaiting)
	fmt.Fprintf(w, "Response:   %g\n", m.AvgResponse)
	fmt.Fprintf(w, "CPU Util:   %g%%\n", m.CPUUtil)
	fmt.Fprintf(w, "Throughput: %g proc/unit time\n", m.Throughput)
}

// PrintPercentiles renders an additional, non-mandated diagnostic
// section with p50/p95/p99 turnaround and waiting time.
func (m *Metrics) PrintPercentiles(w io.Writer) {
	if len(m.Per) == 0 {
		return
	}
	fmt.Fprintln(w, "\n--- Percentiles ---")
	fmt.Fprintf(w, "Turnaround p50/p95/p99: %.2f / %.2f / %.2f\n", m.P50Turnaround, m.P95Turnaround, m.P99Turnaround)
	fmt.Fprintf(w, "Waiting    p50/p95/p99: %.2f / %.2f / %.2f\n", m.P50Waiting, m.P95Waiting, m.P99Waiting)
}
