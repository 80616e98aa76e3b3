package regress

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// Classifier is a binary linear classifier trained by least squares: the
// weights minimize the squared error against +1/-1 labels, and prediction is
// the sign of the resulting linear function. It is the course's "regression
// as classification" example, applied there to flattened image vectors.
type Classifier struct {
	weights *mat.VecDense // feature weights followed by the bias term
}

// Fit trains the classifier on the rows of x with the given labels. Labels
// must be +1 or -1, and there must be at least as many samples as features
// plus one (for the bias).
func (c *Classifier) Fit(x *mat.Dense, labels []float64) error {
	rows, cols := x.Dims()
	if len(labels) != rows {
		return errors.Errorf("regress: %d samples but %d labels", rows, len(labels))
	}
	if rows < cols+1 {
		return errors.Errorf("regress: %d samples cannot determine %d weights", rows, cols+1)
	}
	for i, l := range labels {
		if l != 1 && l != -1 {
			return errors.Errorf("regress: label %v at row %d is not +1 or -1", l, i)
		}
	}

	// Augment the design matrix with a ones column for the bias
	a := mat.NewDense(rows, cols+1, nil)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			a.Set(i, j, x.At(i, j))
		}
		a.Set(i, cols, 1)
	}

	b := mat.NewVecDense(rows, labels)
	w := mat.NewVecDense(cols+1, nil)

	var qr mat.QR
	qr.Factorize(a)
	if err := qr.SolveVecTo(w, false, b); err != nil {
		return errors.Wrap(err, "regress: least squares solve failed")
	}

	c.weights = w
	return nil
}

// Decision returns the value of the linear function for one feature vector.
// Positive values classify as +1, negative as -1.
func (c *Classifier) Decision(features []float64) (float64, error) {
	if c.weights == nil {
		return 0, errors.New("regress: classifier is not fitted")
	}
	if len(features) != c.weights.Len()-1 {
		return 0, errors.Errorf("regress: %d features, classifier was fitted with %d", len(features), c.weights.Len()-1)
	}

	v := c.weights.AtVec(c.weights.Len() - 1) // bias
	for i, f := range features {
		v += c.weights.AtVec(i) * f
	}
	return v, nil
}

// Predict returns the predicted label, +1 or -1, for one feature vector.
// A decision value of exactly zero predicts +1.
func (c *Classifier) Predict(features []float64) (float64, error) {
	v, err := c.Decision(features)
	if err != nil {
		return 0, err
	}
	if v < 0 {
		return -1, nil
	}
	return 1, nil
}

// Score returns the fraction of rows of x whose predicted label matches.
func (c *Classifier) Score(x *mat.Dense, labels []float64) (float64, error) {
	rows, _ := x.Dims()
	if len(labels) != rows {
		return 0, errors.Errorf("regress: %d samples but %d labels", rows, len(labels))
	}

	var correct int
	for i := 0; i < rows; i++ {
		p, err := c.Predict(mat.Row(nil, i, x))
		if err != nil {
			return 0, errors.Wrapf(err, "regress: predicting row %d", i)
		}
		if p == labels[i] {
			correct++
		}
	}
	return float64(correct) / float64(rows), nil
}
