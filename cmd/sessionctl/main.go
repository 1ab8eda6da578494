// sessionctl is a small operator tool for the admin surface: enumerate live
// interview sessions, show process stats, and terminate a session.
//
// Usage:
//
//	sessionctl [-addr http://localhost:3001] list
//	sessionctl [-addr http://localhost:3001] stats
//	sessionctl [-addr http://localhost:3001] terminate <session-id>
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"strings"

	"interview-scorecard-be/internal/dto"

	"github.com/fatih/color"
)

func main() {
	addr := flag.String("addr", "http://localhost:3001", "base URL of the scorecard server")
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		log.Fatal("usage: sessionctl [-addr url] list|stats|terminate <id>")
	}

	switch args[0] {
	case "list":
		listSessions(*addr)
	case "stats":
		showStats(*addr)
	case "terminate":
		if len(args) < 2 {
			log.Fatal("usage: sessionctl terminate <session-id>")
		}
		terminateSession(*addr, args[1])
	default:
		log.Fatalf("unknown command %q", args[0])
	}
}

func listSessions(addr string) {
	var sessions []dto.SessionSummaryResponse
	getJSON(addr+"/active-sessions", &sessions)

	if len(sessions) == 0 {
		color.Yellow("No active sessions.")
		return
	}

	bold := color.New(color.Bold)
	for _, s := range sessions {
		bold.Printf("%s\n", s.Id)
		fmt.Printf("  candidate:      %s\n", s.CandidateName)
		fmt.Printf("  interviewers:   %s, %s\n", s.Interviewer1, s.Interviewer2)
		spec := s.Specialization
		if spec == "" {
			spec = "(not picked)"
		}
		fmt.Printf("  specialization: %s\n", spec)
		if len(s.AutomationTools) > 0 {
			fmt.Printf("  tools:          %s\n", strings.Join(s.AutomationTools, ", "))
		}
	}
	color.Green("%d session(s).", len(sessions))
}

func showStats(addr string) {
	var stats dto.SessionStatsResponse
	getJSON(addr+"/session-stats", &stats)

	fmt.Printf("active sessions: %d\n", stats.ActiveSessions)
	fmt.Printf("memory usage:    %s\n", stats.MemoryUsage)
	fmt.Printf("uptime:          %s\n", stats.Uptime)
}

func terminateSession(addr, id string) {
	resp, err := http.Post(addr+"/terminate-session/"+id, "application/json", nil)
	if err != nil {
		log.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		color.Red("Session %s not found.", id)
		return
	}
	if resp.StatusCode != http.StatusOK {
		log.Fatalf("unexpected status: %s", resp.Status)
	}

	var result dto.TerminateSessionResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		log.Fatalf("decode response: %v", err)
	}
	color.Green("Terminated session %s (candidate: %s).", result.SessionId, result.CandidateName)
}

func getJSON(url string, out interface{}) {
	resp, err := http.Get(url)
	if err != nil {
		log.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Fatalf("unexpected status: %s", resp.Status)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		log.Fatalf("decode response: %v", err)
	}
}
