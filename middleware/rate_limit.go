package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// Cada IP tiene su propio limiter + lastSeen para la limpieza periódica.
type visitante struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// IPRateLimiter administra map<ip, limiter>.
type IPRateLimiter struct {
	mu         sync.Mutex
	visitantes map[string]*visitante

	reqPorMin int
	burst     int
	ttl       time.Duration
}

func NewIPRateLimiter(reqPorMin, burst int, ttl time.Duration) *IPRateLimiter {
	rl := &IPRateLimiter{
		visitantes: make(map[string]*visitante),
		reqPorMin:  reqPorMin,
		burst:      burst,
		ttl:        ttl,
	}
	go rl.limpiarVisitantes()
	return rl
}

func (rl *IPRateLimiter) getLimiter(ip string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	if v, ok := rl.visitantes[ip]; ok {
		v.lastSeen = time.Now()
		return v.limiter
	}

	rps := float64(rl.reqPorMin) / 60.0
	limiter := rate.NewLimiter(rate.Limit(rps), rl.burst)
	rl.visitantes[ip] = &visitante{limiter: limiter, lastSeen: time.Now()}
	return limiter
}

func (rl *IPRateLimiter) limpiarVisitantes() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		rl.mu.Lock()
		for ip, v := range rl.visitantes {
			if time.Since(v.lastSeen) > rl.ttl {
				delete(rl.visitantes, ip)
			}
		}
		rl.mu.Unlock()
	}
}

func RateLimitByIP(rl *IPRateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		limiter := rl.getLimiter(ip)
		if !limiter.Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"message": "Demasiadas solicitudes",
				"hint":    "Probá de nuevo en unos minutos.",
			})
			return
		}
		c.Next()
	}
}

// 20 requests/minuto/IP para los endpoints públicos de confirmación, que son
// el único blanco expuesto sin autenticación.
var ConfirmacionLimiter = NewIPRateLimiter(20, 10, 5*time.Minute)

func RateLimitConfirmacion() gin.HandlerFunc {
	return RateLimitByIP(ConfirmacionLimiter)
}
