package main

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/exec"
	"runtime"
	"time"
)

const (
	defaultPort  = "4000"
	readyTimeout = 30 * time.Second
)

func main() {
	fmt.Println("Запуск сервера плейлистов...")

	port := os.Getenv("PORT")
	if port == "" {
		port = defaultPort
	}
	serverURL := "http://127.0.0.1:" + port

	clientName := "playlists"
	if runtime.GOOS == "windows" {
		clientName = "playlists.exe"
	}

	// запускаем сервер на фоне; он сам читает configs/server.yaml, PORT важнее server.port
	server := exec.Command("go", "run", "./cmd/server/main.go")
	server.Env = append(os.Environ(), "PORT="+port)
	server.Stdout = os.Stdout
	server.Stderr = os.Stderr

	if err := server.Start(); err != nil {
		fmt.Printf("Ошибка запуска сервера: %v\n", err)
		return
	}

	// собираем клиента, пока сервер компилируется
	if _, err := os.Stat(clientName); os.IsNotExist(err) {
		fmt.Println("Сборка клиента...")
		build := exec.Command("go", "build", "-o", clientName, "./cmd/playlists/main.go")
		build.Stdout = os.Stdout
		build.Stderr = os.Stderr
		if err := build.Run(); err != nil {
			fmt.Printf("Ошибка сборки клиента: %v\n", err)
		}
		// если не винда даём права
		if runtime.GOOS != "windows" {
			os.Chmod(clientName, 0755)
		}
	}

	if err := waitReady(serverURL, readyTimeout); err != nil {
		fmt.Printf("Сервер не ответил: %v\n", err)
		_ = server.Process.Kill()
		return
	}

	fmt.Printf("Сервер запущен: %s\n", serverURL)
	fmt.Println(clientHint(runtime.GOOS, clientName, serverURL))

	server.Wait()
}

// waitReady опрашивает GET / пока сервер не ответит 200 или не выйдет timeout.
func waitReady(baseURL string, timeout time.Duration) error {
	client := &http.Client{Timeout: time.Second}
	deadline := time.Now().Add(timeout)

	for {
		res, err := client.Get(baseURL + "/")
		if err == nil {
			res.Body.Close()
			if res.StatusCode == http.StatusOK {
				return nil
			}
			err = fmt.Errorf("GET /: %s", res.Status)
		}

		if time.Now().After(deadline) {
			return errors.Join(errors.New("server not ready"), err)
		}
		time.Sleep(200 * time.Millisecond)
	}
}

// clientHint подсказывает, как запускать агента против поднятого сервера.
func clientHint(goos, clientName, serverURL string) string {
	bin := "./" + clientName
	setEnv := "export PLAYLISTS_SERVER=" + serverURL
	if goos == "windows" {
		bin = ".\\" + clientName
		setEnv = "$env:PLAYLISTS_SERVER=\"" + serverURL + "\""
	}

	hint := "Данный терминал не закрывай. Открой новый и запускай:\n  "
	if serverURL != "http://127.0.0.1:"+defaultPort {
		hint += setEnv + "\n  "
	}
	return hint + bin + " signup --email you@example.com"
}
