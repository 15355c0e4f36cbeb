// Package sampling decide quais índices da série temporal viram quadros
// da animação, limitando o total de quadros renderizados.
package sampling

// Plan é o conjunto ordenado de índices amostrados da série.
type Plan struct {
	Stride  int
	Indices []int
}

// NewPlan calcula o passo de amostragem para uma série de tamanho n com
// orçamento de quadros budget, e enumera os índices resultantes.
//
// O passo é 1 quando n <= budget; caso contrário é max(1, n/budget) com
// divisão inteira. Isso significa que o limite só é de fato respeitado
// quando n <= budget ou n >= 2*budget: para n entre budget+1 e 2*budget-1
// a divisão inteira ainda dá passo 1 e todos os n índices são amostrados.
// Esse é o comportamento de referência e é mantido como está.
func NewPlan(n, budget int) Plan {
	stride := 1
	if budget > 0 && n > budget {
		if s := n / budget; s > stride {
			stride = s
		}
	}

	indices := make([]int, 0, (n+stride-1)/stride)
	for i := 0; i < n; i += stride {
		indices = append(indices, i)
	}

	return Plan{Stride: stride, Indices: indices}
}
