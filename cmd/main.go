package main

import (
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/baxromumarov/mpsc"
	"github.com/baxromumarov/mpsc/mpscprom"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

type message struct {
	producer int
	seq      int
}

func main() {
	var (
		producers = flag.Int("producers", 4, "number of producer goroutines")
		messages  = flag.Int("messages", 1000, "messages sent by each producer")
		verbose   = flag.Bool("v", false, "log channel lifecycle events")
		metrics   = flag.String("metrics", "", "serve Prometheus metrics on this address, e.g. :9090")
	)
	flag.Parse()

	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if *verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	if *producers <= 0 || *messages < 0 {
		log.Error("producers must be positive and messages non-negative")
		os.Exit(2)
	}

	tx, rx := mpsc.New[message](mpsc.WithName("demo"), mpsc.WithLogger(log))

	if *metrics != "" {
		reg := prometheus.NewRegistry()
		reg.MustRegister(mpscprom.NewCollector(rx, mpscprom.WithChannel("demo")))
		srv := &http.Server{
			Addr:              *metrics,
			Handler:           promhttp.HandlerFor(reg, promhttp.HandlerOpts{}),
			ReadHeaderTimeout: 5 * time.Second,
		}
		go func() {
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.WithError(err).Error("metrics server stopped")
			}
		}()
		defer srv.Close()
		log.WithField("addr", *metrics).Info("serving metrics")
	}

	start := time.Now()

	var g errgroup.Group
	for id := range *producers {
		tx := tx.Clone()
		g.Go(func() error {
			defer tx.Close()
			for seq := range *messages {
				tx.Send(message{producer: id, seq: seq})
			}
			return nil
		})
	}
	tx.Close()

	next := make([]int, *producers)
	var total, outOfOrder int
	for m := range rx.All() {
		if m.seq != next[m.producer] {
			outOfOrder++
		}
		next[m.producer] = m.seq + 1
		total++
	}
	if err := g.Wait(); err != nil {
		log.WithError(err).Error("producer failed")
		os.Exit(1)
	}

	st := rx.Stats()
	log.WithFields(logrus.Fields{
		"received":     total,
		"out_of_order": outOfOrder,
		"batches":      st.Drains,
		"elapsed":      time.Since(start),
	}).Info("done")

	if outOfOrder > 0 {
		fmt.Fprintln(os.Stderr, "per-producer ordering violated")
		os.Exit(1)
	}
}
