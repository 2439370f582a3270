package main

import (
	"encoding/json"
	"flag"
	"log"
	"math/rand"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/akarpov/linkcut/internal/api/rest/modeldto"
)

func randStringBytes(n int) string {
	const letterBytes = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
	b := make([]byte, n)
	for i := range b {
		b[i] = letterBytes[rand.Intn(len(letterBytes))]
	}
	return string(b)
}

func main() {
	a := flag.String("a", "http://localhost:8080", "Server address")
	flag.Parse()
	address := *a

	const login = "/api/login"
	const postJSON = "/api/shorten"
	const getAllByUserID = "/api/user/urls"
	const deleteOne = "/api/user/urls/"
	const ping = "/ping"
	const iterations = 20

	client := resty.New()
	client.SetRedirectPolicy(resty.RedirectPolicyFunc(func(req *http.Request, via []*http.Request) error {
		return http.ErrUseLastResponse
	}))

	// Performing ping loading
	log.Println("Performing ping loading")
	for i := 0; i < iterations; i++ {
		_, err := client.R().Get(address + ping)
		if err != nil {
			log.Fatal(err)
		}
	}

	// Logging in once, the session cookie is kept by the resty client
	log.Println("Performing login")
	loginBody, _ := json.Marshal(modeldto.RequestLogin{ExternalID: randStringBytes(10), DisplayName: "Load Tester"})
	res, err := client.R().SetHeader("Content-Type", "application/json").SetBody(loginBody).Post(address + login)
	if err != nil {
		log.Fatal(err)
	}
	client.SetCookies(res.Cookies())

	// Performing postJSON loading
	log.Println("Performing postJSON loading")
	var sURLs []string
	for i := 0; i < iterations; i++ {
		reqBody, _ := json.Marshal(modeldto.RequestURL{URL: "https://www." + randStringBytes(10) + ".com"})
		res, err := client.R().SetHeader("Content-Type", "application/json").SetBody(reqBody).Post(address + postJSON)
		if err != nil {
			log.Fatal(err)
		}
		var resBody modeldto.ResponseURL
		if err := json.Unmarshal(res.Body(), &resBody); err != nil {
			log.Fatal(err)
		}
		sURLs = append(sURLs, resBody.ShortURL)
	}
	time.Sleep(1 * time.Second)

	// Performing redirect loading
	log.Println("Performing redirect loading")
	for _, sURL := range sURLs {
		res, err := client.R().Get(sURL)
		if err != nil {
			log.Fatal(err)
		}
		if res.StatusCode() != http.StatusTemporaryRedirect {
			log.Fatal("unexpected status code ", res.StatusCode(), " for ", sURL)
		}
	}

	// Performing getAllByUserID loading
	log.Println("Performing getAllByUserID loading")
	for i := 0; i < iterations; i++ {
		_, err := client.R().Get(address + getAllByUserID)
		if err != nil {
			log.Fatal(err)
		}
	}

	// Performing delete loading
	log.Println("Performing delete loading")
	for _, sURL := range sURLs {
		slug := sURL[len(address)+1:]
		_, err := client.R().Delete(address + deleteOne + slug)
		if err != nil {
			log.Fatal(err)
		}
	}
	log.Println("Loading finished")
}
