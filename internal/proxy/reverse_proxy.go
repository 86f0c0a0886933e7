package proxy

import (
    "net/http"
    "net/http/httputil"
    "net/url"
)

func NewReverseProxy(target string) (*httputil.ReverseProxy, error) {
    backendURL, err := url.Parse(target)
    if err != nil {
        return nil, err
    }
    return httputil.NewSingleHostReverseProxy(backendURL), nil
}

// UIHandler fronts an existing storefront UI while the harness serves
// the instrumented API paths itself. Anything not routed elsewhere
// falls through to the UI backend.
func UIHandler(target string) (http.Handler, error) {
    p, err := NewReverseProxy(target)
    if err != nil {
        return nil, err
    }

    return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
        p.ServeHTTP(w, r)
    }), nil
}
