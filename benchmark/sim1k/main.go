package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"math"
	"math/rand"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
)

var maxSimulators int = 1000
var httpHostPort string = "127.0.0.1:2080"

var rnd *rand.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))

func main() {
	simulatorIDs := make([]string, maxSimulators)
	for i := range maxSimulators {
		simulatorIDs[i] = uuid.NewString()
	}
	fmt.Printf("generated %v simulator IDs\n", maxSimulators)

	resp, err := http.Get(fmt.Sprintf("http://%s/healthz", httpHostPort))
	if err != nil {
		log.Fatal("Failed to connect to HTTP server:", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		log.Fatal("HTTP server not available")
	}

	fmt.Printf("http server verified\n")

	var startTime time.Time
	var usedTime time.Duration

	startTime = time.Now()
	wg := sync.WaitGroup{}
	for i := range maxSimulators {
		wg.Add(1)
		go func() {
			insertTrigger(simulatorIDs[i])
			fmt.Printf("\rinserted trigger for simulator %v", i)
			wg.Done()
		}()
	}
	wg.Wait()
	usedTime = time.Since(startTime)

	fmt.Printf(
		"\rinserted trigger for %v simulators: used time=%v seconds, throughput=%v action/second\n",
		maxSimulators, usedTime.Seconds(), float64(maxSimulators)/usedTime.Seconds(),
	)

	startTime = time.Now()
	wg = sync.WaitGroup{}
	for i := range maxSimulators {
		wg.Add(1)
		go func() {
			doAction(simulatorIDs[i])
			wg.Done()
		}()
	}
	wg.Wait()
	usedTime = time.Since(startTime)

	fmt.Printf(
		"\n\rdid actions for %v simulators: used time=%v seconds, throughput=%v action/second\n",
		maxSimulators, usedTime.Seconds(), float64(maxSimulators*3)/usedTime.Seconds(),
	)
}

func flipCoin() bool {
	return rnd.Int31n(100000)%2 == 0
}

func rndFloat64(min, max float64, decimal int) float64 {
	val := min + rnd.Float64()*(max-min)
	multiplier := float64(math.Pow10(decimal))
	return float64(math.Round(float64(val)*float64(multiplier))) / multiplier
}

func rndPhoneNumber() string {
	return fmt.Sprintf("60%010d", rnd.Int63n(10000000000))
}

func insertTrigger(simulatorID string) {
	payload := map[string]any{
		"phone_number":         rndPhoneNumber(),
		"threshold_percentage": rndFloat64(50.0, 150.0, 1),
		"is_active":            flipCoin(),
	}

	jsonData, _ := json.Marshal(payload)
	resp, err := http.Post(fmt.Sprintf("http://%s/simulators/%s/triggers", httpHostPort, simulatorID), "application/json", bytes.NewBuffer(jsonData))
	if err != nil {
		panic(err)
	}
	defer resp.Body.Close()
}

func doAction(simulatorID string) {
	actions := []func(){
		genUpsertTriggerAction(simulatorID),
		genGetHistoryAction(simulatorID),
		genPostReadingAction(simulatorID),
	}
	actionNames := []string{
		"UpsertTrigger",
		"GetHistory",
		"PostReading",
	}
	rnd.Shuffle(len(actions), func(i, j int) {
		actions[i], actions[j] = actions[j], actions[i]
		actionNames[i], actionNames[j] = actionNames[j], actionNames[i]
	})
	for index, action := range actions {
		action()
		fmt.Printf("\rexecuted action %v for simulator %v", actionNames[index], simulatorID)
		time.Sleep(time.Duration(100+rnd.Int31n(1000)) * time.Millisecond)
	}
}

func genUpsertTriggerAction(simulatorID string) func() {
	return func() {
		insertTrigger(simulatorID)
	}
}

func genPostReadingAction(simulatorID string) func() {
	return func() {
		payload := map[string]any{
			"actual_percentage": rndFloat64(0.0, 200.0, 1),
		}

		jsonData, _ := json.Marshal(payload)
		resp, err := http.Post(fmt.Sprintf("http://%s/simulators/%s/readings", httpHostPort, simulatorID), "application/json", bytes.NewBuffer(jsonData))
		if err != nil {
			fmt.Printf("\nerror: %v\n", err)
		}
		defer resp.Body.Close()
	}
}

func genGetHistoryAction(simulatorID string) func() {
	return func() {
		resp, err := http.Get(fmt.Sprintf("http://%s/simulators/%s/history", httpHostPort, simulatorID))
		if err != nil {
			fmt.Printf("\nerror: %v\n", err)
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			fmt.Printf("\nresponse status code != 200: %v\n", resp)
		}
	}
}
