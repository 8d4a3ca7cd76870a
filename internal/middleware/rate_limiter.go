package middleware

import (
	"net/http"
	"sync"
	"time"

	"dalctmarket/internal/apierror"

	"github.com/gin-gonic/gin"
)

// limitador is a per-IP sliding-window counter. One instance per route group
// keeps login attempts and general API traffic accounted separately.
type limitador struct {
	limite  int
	ventana time.Duration
	mensaje string

	mu       sync.Mutex
	ventanas map[string]*ventanaIP
}

type ventanaIP struct {
	count int
	fin   time.Time
}

func nuevoLimitador(limite int, ventana time.Duration, mensaje string) *limitador {
	l := &limitador{
		limite:   limite,
		ventana:  ventana,
		mensaje:  mensaje,
		ventanas: make(map[string]*ventanaIP),
	}
	// Expired windows are purged in the background so IPs that never return
	// do not accumulate.
	go l.purgar()
	return l
}

func (l *limitador) permitir(ip string, ahora time.Time) (bool, time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()

	v, ok := l.ventanas[ip]
	if !ok || ahora.After(v.fin) {
		v = &ventanaIP{fin: ahora.Add(l.ventana)}
		l.ventanas[ip] = v
	}
	v.count++
	return v.count <= l.limite, v.fin
}

func (l *limitador) purgar() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()
	for range ticker.C {
		ahora := time.Now()
		l.mu.Lock()
		for ip, v := range l.ventanas {
			if ahora.After(v.fin) {
				delete(l.ventanas, ip)
			}
		}
		l.mu.Unlock()
	}
}

func (l *limitador) middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ok, fin := l.permitir(c.ClientIP(), time.Now())
		if !ok {
			c.Header("Retry-After", fin.Format(time.RFC1123))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, apierror.New(l.mensaje))
			return
		}
		c.Next()
	}
}

// LoginRateLimiter limits login attempts to 20 per minute per IP.
func LoginRateLimiter() gin.HandlerFunc {
	return nuevoLimitador(20, time.Minute, "Demasiados intentos de login. Intente en 1 minuto.").middleware()
}

// RateLimiter is the general API limiter, sized per route group.
func RateLimiter(limite int, ventana time.Duration) gin.HandlerFunc {
	return nuevoLimitador(limite, ventana, "Demasiadas solicitudes. Intente nuevamente en un momento.").middleware()
}
